package registry

import "regexp"

var japan = Country{
	Code:        JP,
	Name:        "Japan",
	Nationality: "Japanese",

	Surnames: pairs(
		"佐藤", "sato", "鈴木", "suzuki", "高橋", "takahashi", "田中", "tanaka",
		"伊藤", "ito", "渡辺", "watanabe", "山本", "yamamoto", "中村", "nakamura",
		"小林", "kobayashi", "加藤", "kato", "吉田", "yoshida", "山田", "yamada",
		"佐々木", "sasaki", "山口", "yamaguchi", "松本", "matsumoto", "井上", "inoue",
		"木村", "kimura", "林", "hayashi", "斎藤", "saito", "清水", "shimizu",
	),
	MaleNames: pairs(
		"翔太", "shota", "大輔", "daisuke", "健太", "kenta", "拓也", "takuya",
		"蓮", "ren", "悠人", "yuto", "大翔", "hiroto", "直樹", "naoki",
		"誠", "makoto", "浩二", "koji", "隆", "takashi", "和也", "kazuya",
		"翼", "tsubasa", "一郎", "ichiro", "太郎", "taro",
	),
	FemaleNames: pairs(
		"陽菜", "hina", "結衣", "yui", "さくら", "sakura", "美咲", "misaki",
		"葵", "aoi", "愛", "ai", "花子", "hanako", "由美", "yumi",
		"恵子", "keiko", "真由美", "mayumi", "彩", "aya", "凛", "rin",
		"優子", "yuko", "明美", "akemi", "千尋", "chihiro",
	),

	Regions: []Region{
		{Name: "北海道", Latin: "Hokkaido", Code: "01", PostalPrefix: "0", Cities: []string{"札幌市中央区", "札幌市北区", "函館市", "旭川市"}},
		{Name: "宮城県", Latin: "Miyagi", Code: "04", PostalPrefix: "98", Cities: []string{"仙台市青葉区", "仙台市宮城野区", "石巻市"}},
		{Name: "埼玉県", Latin: "Saitama", Code: "11", PostalPrefix: "3", Cities: []string{"さいたま市大宮区", "川越市", "所沢市"}},
		{Name: "千葉県", Latin: "Chiba", Code: "12", PostalPrefix: "2", Cities: []string{"千葉市中央区", "船橋市", "柏市", "浦安市"}},
		{Name: "東京都", Latin: "Tokyo", Code: "13", PostalPrefix: "1", Cities: []string{"新宿区", "渋谷区", "港区", "千代田区", "世田谷区", "品川区", "豊島区"}},
		{Name: "神奈川県", Latin: "Kanagawa", Code: "14", PostalPrefix: "2", Cities: []string{"横浜市中区", "横浜市西区", "川崎市", "鎌倉市"}},
		{Name: "愛知県", Latin: "Aichi", Code: "23", PostalPrefix: "4", Cities: []string{"名古屋市中区", "名古屋市中村区", "豊田市", "岡崎市"}},
		{Name: "京都府", Latin: "Kyoto", Code: "26", PostalPrefix: "6", Cities: []string{"京都市中京区", "京都市左京区", "宇治市"}},
		{Name: "大阪府", Latin: "Osaka", Code: "27", PostalPrefix: "5", Cities: []string{"大阪市北区", "大阪市中央区", "堺市", "豊中市"}},
		{Name: "兵庫県", Latin: "Hyogo", Code: "28", PostalPrefix: "6", Cities: []string{"神戸市中央区", "姫路市", "西宮市"}},
		{Name: "広島県", Latin: "Hiroshima", Code: "34", PostalPrefix: "7", Cities: []string{"広島市中区", "福山市", "呉市"}},
		{Name: "福岡県", Latin: "Fukuoka", Code: "40", PostalPrefix: "8", Cities: []string{"福岡市博多区", "福岡市中央区", "北九州市"}},
		{Name: "沖縄県", Latin: "Okinawa", Code: "47", PostalPrefix: "90", Cities: []string{"那覇市", "沖縄市", "浦添市"}},
	},
	Streets: []string{
		"中央", "本町", "栄町", "緑町", "桜木町", "東町", "西町", "南町",
		"北町", "若葉", "旭町", "駅前", "大手町", "松が丘", "青葉台",
	},

	IDFormat: Format{
		Pattern: regexp.MustCompile(`^\d{12}$`),
		Digits:  12,
	},
	PhoneFormat: Format{
		Pattern:  regexp.MustCompile(`^\+81 [789]0-\d{4}-\d{4}$`),
		Prefixes: []string{"70", "80", "90"},
		Digits:   8,
	},
	PassportFormat: Format{
		Pattern:  regexp.MustCompile(`^TK\d{7}$`),
		Prefixes: []string{"TK"},
		Digits:   7,
	},

	Occupations: []string{
		"会社員", "公務員", "エンジニア", "看護師", "教師", "医師", "営業職", "事務職",
		"デザイナー", "薬剤師", "調理師", "自営業", "研究者", "販売員",
	},
	EducationLevels: []string{"高等学校卒業", "専門学校卒業", "短期大学卒業", "大学卒業", "大学院修士課程修了", "大学院博士課程修了"},
	EmailProviders:  []string{"yahoo.co.jp", "docomo.ne.jp", "ezweb.ne.jp", "softbank.ne.jp"},
}
