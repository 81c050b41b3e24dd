package help

import "strings"

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Lookup returns the help for a form field key. Keys of repeated fields
// carry a "/<index>" suffix which is ignored.
func Lookup(key string) (HelpText, bool) {
	if i := strings.IndexByte(key, '/'); i >= 0 {
		key = key[:i]
	}
	text, ok := Texts[key]
	return text, ok
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"date": {
		Title:       "日付",
		Description: "訪問日。",
		Details:     "形式: YYYY-MM-DD (例: 2024-01-10)。空欄の場合は出力されません。",
	},
	"gaf": {
		Title:       "GAF",
		Description: "機能の全体的評定 (0-100)。",
		Details:     "数値を入力してください。",
	},
	"temperature": {
		Title:       "体温",
		Description: "測定した体温。",
		Details:     "例: 36.5",
	},
	"blood_pressure": {
		Title:       "血圧",
		Description: "測定した血圧。",
		Details:     "例: 120/80",
	},
	"pulse": {
		Title:       "脈",
		Description: "1分間の脈拍数。",
	},
	"spo2": {
		Title:       "Sp02",
		Description: "経皮的動脈血酸素飽和度。",
		Details:     "数値のみ入力してください。出力時に % が付きます。",
	},
	"adherence": {
		Title:       "内服薬服用状況",
		Description: "前回訪問からの服薬状況を1つ選択します。",
		Details: `全て服用済 - 処方どおり服用
概ね服用済み(60%) - 一部飲み忘れ
服用忘れあり - 飲み忘れが目立つ`,
	},
	"dispensing": {
		Title:       "服薬セット",
		Description: "今回セットした薬の量を1つ選択します。",
	},
	"other": {
		Title:       "その他",
		Description: "選択肢に当てはまらない内容や補足。",
		Details:     "選択がなくても入力があれば出力されます。",
	},
	"hospital": {
		Title:       "病院名",
		Description: "受診先の病院名など。",
	},
	"visit_date": {
		Title:       "日付",
		Description: "受診日。",
		Details:     "形式: YYYY-MM-DD。空欄の場合は出力されません。",
	},
	"prescription": {
		Title:       "処方",
		Description: "処方の有無。",
		Details:     "「なし」は出力されません。",
	},
	"change": {
		Title:       "変更",
		Description: "処方内容の変更の有無。",
		Details:     "「あり」を選ぶと変更内容を入力できます。「あり」以外を選ぶと変更内容は消去されます。",
	},
	"change_detail": {
		Title:       "変更内容",
		Description: "変更された処方の内容。",
		Details:     "例: 増量、減量、中止",
	},
	"memo": {
		Title:       "メモ",
		Description: "受診に関する補足。",
	},
	"mental": {
		Title:       "精神状態",
		Description: "訪問時の精神状態。",
	},
	"physical": {
		Title:       "身体状態",
		Description: "訪問時の身体状態。",
	},
	"show_details": {
		Title:       "生活状況",
		Description: "保清・食事・環境を入力する場合に選択します。",
		Details:     "入力済みの内容は閉じても出力されます。",
	},
	"hygiene": {
		Title:       "保清",
		Description: "入浴や更衣などの清潔保持。",
	},
	"meals": {
		Title:       "食事",
		Description: "食事の回数や内容。",
	},
	"environment": {
		Title:       "環境",
		Description: "住環境の様子。",
	},
	"daytime": {
		Title:       "日中活動",
		Description: "日中の過ごし方。",
	},
	"action": {
		Title:       "操作",
		Description: "出力結果の扱いを選択します。",
		Details: `コピー - クリップボードにコピー
保存 - 入力内容をファイルに保存
修正 - 最初の画面に戻る
終了 - 出力結果を表示して終了`,
	},
	"save_path": {
		Title:       "保存先",
		Description: "入力内容を保存するファイル。",
		Details:     "拡張子 .yaml / .yml / .toml で形式が決まります。",
	},
}
