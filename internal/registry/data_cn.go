package registry

import "regexp"

var china = Country{
	Code:        CN,
	Name:        "China",
	Nationality: "Chinese",

	Surnames: pairs(
		"王", "wang", "李", "li", "张", "zhang", "刘", "liu", "陈", "chen",
		"杨", "yang", "黄", "huang", "赵", "zhao", "吴", "wu", "周", "zhou",
		"徐", "xu", "孙", "sun", "马", "ma", "朱", "zhu", "胡", "hu",
		"郭", "guo", "何", "he", "高", "gao", "林", "lin", "罗", "luo",
		"郑", "zheng", "梁", "liang", "谢", "xie", "宋", "song", "唐", "tang",
		"许", "xu", "韩", "han", "冯", "feng", "邓", "deng", "曹", "cao",
		"彭", "peng", "曾", "zeng", "肖", "xiao", "田", "tian", "董", "dong",
		"潘", "pan", "袁", "yuan", "蔡", "cai", "蒋", "jiang", "余", "yu",
		"欧阳", "ouyang", "司马", "sima", "诸葛", "zhuge",
	),
	// single characters; a given name is one or two of them
	MaleNames: pairs(
		"伟", "wei", "强", "qiang", "磊", "lei", "军", "jun", "洋", "yang",
		"勇", "yong", "杰", "jie", "涛", "tao", "明", "ming", "超", "chao",
		"刚", "gang", "平", "ping", "辉", "hui", "鹏", "peng", "华", "hua",
		"飞", "fei", "鑫", "xin", "波", "bo", "斌", "bin", "宇", "yu",
		"浩", "hao", "凯", "kai", "健", "jian", "俊", "jun", "帆", "fan",
		"建", "jian", "国", "guo", "志", "zhi", "文", "wen", "龙", "long",
	),
	FemaleNames: pairs(
		"芳", "fang", "娜", "na", "敏", "min", "静", "jing", "丽", "li",
		"艳", "yan", "娟", "juan", "霞", "xia", "秀", "xiu", "玲", "ling",
		"燕", "yan", "婷", "ting", "雪", "xue", "慧", "hui", "莹", "ying",
		"倩", "qian", "琳", "lin", "颖", "ying", "欣", "xin", "悦", "yue",
		"梅", "mei", "兰", "lan", "月", "yue", "萍", "ping", "红", "hong",
	),

	Regions: []Region{
		{Name: "北京市", Latin: "Beijing", Code: "11", Cities: []string{"东城区", "西城区", "朝阳区", "海淀区", "丰台区", "石景山区", "通州区", "昌平区"}},
		{Name: "天津市", Latin: "Tianjin", Code: "12", Cities: []string{"和平区", "河西区", "南开区", "河北区", "滨海新区"}},
		{Name: "河北省", Latin: "Hebei", Code: "13", Cities: []string{"石家庄市", "唐山市", "保定市", "邯郸市", "廊坊市"}},
		{Name: "山西省", Latin: "Shanxi", Code: "14", Cities: []string{"太原市", "大同市", "运城市", "长治市"}},
		{Name: "内蒙古自治区", Latin: "Inner Mongolia", Code: "15", Cities: []string{"呼和浩特市", "包头市", "鄂尔多斯市"}},
		{Name: "辽宁省", Latin: "Liaoning", Code: "21", Cities: []string{"沈阳市", "大连市", "鞍山市", "锦州市"}},
		{Name: "吉林省", Latin: "Jilin", Code: "22", Cities: []string{"长春市", "吉林市", "延吉市"}},
		{Name: "黑龙江省", Latin: "Heilongjiang", Code: "23", Cities: []string{"哈尔滨市", "齐齐哈尔市", "大庆市"}},
		{Name: "上海市", Latin: "Shanghai", Code: "31", Cities: []string{"黄浦区", "徐汇区", "长宁区", "静安区", "浦东新区", "闵行区", "杨浦区"}},
		{Name: "江苏省", Latin: "Jiangsu", Code: "32", Cities: []string{"南京市", "苏州市", "无锡市", "常州市", "南通市", "扬州市"}},
		{Name: "浙江省", Latin: "Zhejiang", Code: "33", Cities: []string{"杭州市", "宁波市", "温州市", "绍兴市", "嘉兴市", "金华市"}},
		{Name: "安徽省", Latin: "Anhui", Code: "34", Cities: []string{"合肥市", "芜湖市", "蚌埠市", "安庆市"}},
		{Name: "福建省", Latin: "Fujian", Code: "35", Cities: []string{"福州市", "厦门市", "泉州市", "漳州市"}},
		{Name: "江西省", Latin: "Jiangxi", Code: "36", Cities: []string{"南昌市", "赣州市", "九江市"}},
		{Name: "山东省", Latin: "Shandong", Code: "37", Cities: []string{"济南市", "青岛市", "烟台市", "潍坊市", "临沂市"}},
		{Name: "河南省", Latin: "Henan", Code: "41", Cities: []string{"郑州市", "洛阳市", "开封市", "南阳市"}},
		{Name: "湖北省", Latin: "Hubei", Code: "42", Cities: []string{"武汉市", "宜昌市", "襄阳市", "荆州市"}},
		{Name: "湖南省", Latin: "Hunan", Code: "43", Cities: []string{"长沙市", "株洲市", "湘潭市", "岳阳市"}},
		{Name: "广东省", Latin: "Guangdong", Code: "44", Cities: []string{"广州市", "深圳市", "珠海市", "佛山市", "东莞市", "汕头市"}},
		{Name: "广西壮族自治区", Latin: "Guangxi", Code: "45", Cities: []string{"南宁市", "桂林市", "柳州市"}},
		{Name: "海南省", Latin: "Hainan", Code: "46", Cities: []string{"海口市", "三亚市"}},
		{Name: "重庆市", Latin: "Chongqing", Code: "50", Cities: []string{"渝中区", "江北区", "沙坪坝区", "九龙坡区", "南岸区"}},
		{Name: "四川省", Latin: "Sichuan", Code: "51", Cities: []string{"成都市", "绵阳市", "德阳市", "宜宾市"}},
		{Name: "贵州省", Latin: "Guizhou", Code: "52", Cities: []string{"贵阳市", "遵义市"}},
		{Name: "云南省", Latin: "Yunnan", Code: "53", Cities: []string{"昆明市", "大理市", "丽江市"}},
		{Name: "西藏自治区", Latin: "Tibet", Code: "54", Cities: []string{"拉萨市", "日喀则市"}},
		{Name: "陕西省", Latin: "Shaanxi", Code: "61", Cities: []string{"西安市", "宝鸡市", "咸阳市"}},
		{Name: "甘肃省", Latin: "Gansu", Code: "62", Cities: []string{"兰州市", "天水市"}},
		{Name: "青海省", Latin: "Qinghai", Code: "63", Cities: []string{"西宁市"}},
		{Name: "宁夏回族自治区", Latin: "Ningxia", Code: "64", Cities: []string{"银川市", "石嘴山市"}},
		{Name: "新疆维吾尔自治区", Latin: "Xinjiang", Code: "65", Cities: []string{"乌鲁木齐市", "喀什市", "克拉玛依市"}},
	},
	Streets: []string{
		"人民路", "解放路", "中山路", "建设路", "和平路", "新华路", "长江路", "黄河路",
		"文化路", "胜利路", "朝阳路", "青年路", "学府路", "光明路", "幸福路", "友谊路",
	},

	IDFormat: Format{
		Pattern: regexp.MustCompile(`^\d{17}[\dX]$`),
		Digits:  18,
	},
	PhoneFormat: Format{
		Pattern: regexp.MustCompile(`^1[3-9]\d{9}$`),
		Prefixes: []string{
			"130", "131", "132", "133", "134", "135", "136", "137", "138", "139",
			"150", "151", "152", "153", "155", "156", "157", "158", "159",
			"166", "170", "176", "177", "178",
			"180", "181", "182", "183", "184", "185", "186", "187", "188", "189",
			"191", "198", "199",
		},
		Digits: 8,
	},
	PassportFormat: Format{
		Pattern:  regexp.MustCompile(`^E\d{8}$`),
		Prefixes: []string{"E"},
		Digits:   8,
	},

	Occupations: []string{
		"软件工程师", "教师", "医生", "护士", "会计", "律师", "销售经理", "设计师",
		"公务员", "工程师", "厨师", "司机", "记者", "建筑师", "药剂师", "市场专员",
		"人力资源专员", "产品经理", "数据分析师", "个体经营者",
	},
	EducationLevels: []string{"高中", "中专", "大专", "本科", "硕士", "博士"},
	EmailProviders:  []string{"qq.com", "163.com", "126.com", "sina.com", "sohu.com", "aliyun.com"},
}
