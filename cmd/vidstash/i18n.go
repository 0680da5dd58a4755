// Package main provides localization for the vidstash CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":             "出力先",
		"Frame Geometry":     "フレーム形状",
		"Video and Quality":  "動画と品質",
		"Runtime":            "実行環境",
		"Debug":              "デバッグ",
		"Logging":            "ログ",
		"Channel Simulation": "通信路シミュレーション",

		// Root command
		"Store arbitrary files as black-and-white video frames": "任意のファイルを白黒の動画フレームとして保存",

		"vidstash packs the bytes of a file into monochrome bitmaps, assembles them into an MP4 video, and recovers the file from such a video.": "vidstashはファイルのバイト列を白黒ビットマップに詰めてMP4動画にまとめ、その動画からファイルを復元します。",

		"vidstash version %s": "vidstash バージョン %s",

		// Commands
		"Encode a file into an MP4 video":                                              "ファイルをMP4動画にエンコード",
		"Recover a file from an MP4 video":                                             "MP4動画からファイルを復元",
		"Show the video track of an MP4 and how many bytes it can carry":               "MP4の映像トラックと格納できるバイト数を表示",
		"Measure bit errors of the current geometry through a simulated lossy channel": "現在のフレーム形状で非可逆通信路をシミュレートしビット誤りを測定",

		// Common flags
		"YAML configuration file":                              "YAML設定ファイル",
		"Density preset (robust, balanced, dense)":             "密度プリセット（robust, balanced, dense）",
		"Frame width in pixels (default: 1280)":                "フレームの幅（ピクセル、デフォルト: 1280）",
		"Frame height in pixels (default: 720)":                "フレームの高さ（ピクセル、デフォルト: 720）",
		"Downscale factor, 0 disables resampling (default: 4)": "縮小係数、0で再標本化なし（デフォルト: 4）",
		"Number of frame workers (default: number of CPUs)":    "フレーム処理のワーカー数（デフォルト: CPU数）",
		"Enable debug output":                                  "デバッグ出力を有効化",
		"Directory for debug output":                           "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":                 "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                              "全てのログ出力を抑制",

		// Pipeline flags
		"Output file path (default: generated unique name)":                    "出力ファイルパス（デフォルト: 自動生成した一意の名前）",
		"Output execution summary to file (Markdown format)":                   "実行サマリーをファイルに出力（Markdown形式）",
		"Keep the scratch directory with intermediate frames":                  "中間フレームを含む作業ディレクトリを残す",
		"Parent directory for scratch directories":                             "作業ディレクトリを作成する親ディレクトリ",
		"Path to the ffmpeg executable (falls back to FFMPEG_PATH, then PATH)": "ffmpeg実行ファイルのパス（未指定時はFFMPEG_PATH、次にPATH）",

		// Encode flags
		"Video frame rate (default: 30)":                     "動画のフレームレート（デフォルト: 30）",
		"Video quality (0-63, lower is better, default: 12)": "動画の品質（0-63、低いほど高品質、デフォルト: 12）",
		"Target bitrate in kbps, 0 uses quality":             "目標ビットレート（kbps、0で品質指定）",

		// Decode flags
		"Luminance threshold for white pixels (0-255, default: 128)": "白と判定する輝度のしきい値（0-255、デフォルト: 128）",
		"Append to the output file instead of overwriting it":        "出力ファイルを上書きせず追記する",

		// Check flags
		"Amount of random data to push through the channel": "通信路に流すランダムデータの量",
		"Gaussian blur sigma in pixels":                     "ガウスぼかしのシグマ（ピクセル）",
		"Maximum luminance noise per pixel":                 "画素ごとの最大輝度ノイズ",
		"JPEG recompression quality, 0 disables it":         "JPEG再圧縮の品質、0で無効",
		"Random seed":                                       "乱数シード",

		// Runtime messages
		"Interrupted, shutting down...":                                "中断されました。シャットダウン中...",
		"Exactly one %s argument is required":                          "%s 引数をちょうど1つ指定してください",
		"Fragmented MP4":                                               "フラグメント化MP4",
		"Capacity: %d bytes":                                           "容量: %d バイト",
		"Warning: video is %dx%d but the geometry expects %dx%d":       "警告: 動画は %dx%d ですが、フレーム形状は %dx%d を想定しています",
		"Frames: %d, bits: %d, bit errors: %d, frames with errors: %d": "フレーム数: %d, ビット数: %d, ビット誤り: %d, 誤りを含むフレーム: %d",
		"Bit error rate: %.6f":                                         "ビット誤り率: %.6f",
		"Data would be corrupted; try a larger downscale factor.":      "データが破損します。より大きな縮小係数を試してください。",

		// Summary content
		"Encode Summary":    "エンコード結果",
		"Decode Summary":    "デコード結果",
		"Run Summary":       "実行結果",
		"Files":             "ファイル",
		"Frames":            "フレーム",
		"Settings":          "設定",
		"Video":             "動画",
		"Item":              "項目",
		"Value":             "値",
		"Input":             "入力",
		"Input Size":        "入力サイズ",
		"Output Size":       "出力サイズ",
		"Output Mode":       "出力モード",
		"Appended":          "追記",
		"Frame Count":       "フレーム数",
		"Bytes per Frame":   "フレームあたりのバイト数",
		"Padding":           "パディング",
		"Frame Size":        "フレームサイズ",
		"Bitmap Size":       "ビットマップサイズ",
		"Preset":            "プリセット",
		"Threshold":         "しきい値",
		"Quality":           "品質",
		"Workers":           "ワーカー数",
		"Scratch Directory": "作業ディレクトリ",
		"Codec":             "コーデック",
		"Frame Rate":        "フレームレート",
		"Duration":          "再生時間",
		"Geometry":          "フレーム形状",
		"Generated at":      "生成日時",
		"took":              "所要時間",
	})
}
