package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Encoding %s (%d bytes) into %s":    "%s (%d バイト) を %s にエンコード中",
		"Decoding %s into %s":               "%s を %s にデコード中",
		"Frame geometry: %s":                "フレーム形状: %s",
		"Wrote %d frames":                   "%d フレームを書き出しました",
		"Video encoded: %d bytes":           "動画をエンコードしました: %d バイト",
		"Extracted %d frames":               "%d フレームを抽出しました",
		"Recovered %d bytes from %d frames": "%d フレームから %d バイトを復元しました",
		"Keeping scratch directory %s":      "作業ディレクトリ %s を残します",
		"Output saved to %s":                "出力を %s に保存しました",
		"Summary saved to %s":               "サマリーを %s に保存しました",

		// Failures
		"Failed to write frames: %s":                "フレームの書き出しに失敗しました: %s",
		"Failed to encode video: %s":                "動画のエンコードに失敗しました: %s",
		"Failed to extract frames: %s":              "フレームの抽出に失敗しました: %s",
		"Failed to decode frames: %s":               "フレームのデコードに失敗しました: %s",
		"Failed to write output: %s":                "出力の書き込みに失敗しました: %s",
		"Failed to write debug output: %s":          "デバッグ出力の書き込みに失敗しました: %s",
		"Failed to write summary: %s":               "サマリーの書き込みに失敗しました: %s",
		"Failed to remove scratch directory %s: %s": "作業ディレクトリ %s の削除に失敗しました: %s",

		// Extract stage
		"Extracted %d frames but the container lists %d": "%d フレームを抽出しましたが、コンテナには %d フレームと記録されています",
		"Could not read container metadata: %s":          "コンテナのメタデータを読めませんでした: %s",
		"Video track: %s %dx%d, %d frames":               "映像トラック: %s %dx%d, %d フレーム",

		// Frame stages
		"Writing %d frames with %d workers":     "%d フレームを %d ワーカーで書き出し中",
		"Frames written: %d (%d padding bytes)": "%d フレームを書き出しました (パディング %d バイト)",
		"Decoding %d frames with %d workers":    "%d フレームを %d ワーカーでデコード中",
		"Decoding completed":                    "デコードが完了しました",

		// Assemble stage
		"Encoding %d frames at %.1f fps (%dx%d)": "%d フレームを %.1f fps (%dx%d) でエンコード中",
		"Encoding completed":                     "エンコードが完了しました",

		// Runtime
		"Scratch directory: %s": "作業ディレクトリ: %s",
		"Using ffmpeg at %s":    "ffmpeg: %s",
	})
}
