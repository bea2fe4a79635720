package categorizer

// Category пара имен категории: каноническое (первичное) и локализованное.
// Обе всегда возвращаются вместе.
type Category struct {
	Name          string // каноническое имя, уникальный ключ каталога
	LocalizedName string // локализованная подпись для витрины
}

// Фиксированный набор категорий каталога
var (
	CategoryLingerie    = Category{"Lingerie & Clothing", "情趣内衣/服装"}
	CategoryDolls       = Category{"Dolls & Figures", "娃娃/充气"}
	CategoryMaleToys    = Category{"Male Toys", "男性玩具"}
	CategoryFemaleToys  = Category{"Female Toys", "女性玩具"}
	CategoryCondoms     = Category{"Condoms & Protection", "避孕套/安全套"}
	CategoryLubricants  = Category{"Lubricants", "润滑剂"}
	CategoryEnhancement = Category{"Enhancement Products", "延时/增强"}
	CategoryCouples     = Category{"Couples Toys", "情侣玩具"}
	CategoryBDSM        = Category{"BDSM & Accessories", "BDSM用品"}
	CategoryBatteries   = Category{"Batteries & Power", "电池/充电"}
	CategoryHealth      = Category{"Health & Care", "健康护理"}
	CategoryAccessories = Category{"Accessories & Others", "配件/其他"}
)

// nameRule категория с набором ключевых слов для сопоставления по названию
type nameRule struct {
	category Category
	keywords []string
}

// nameRules правила сопоставления по названию в порядке убывания
// лексической специфичности: у белья и одежды самые характерные термины,
// универсальная категория аксессуаров замыкает список без ключевых слов
// и гарантирует завершение каскада.
var nameRules = []nameRule{
	{CategoryLingerie, []string{
		"丝袜", "连裤袜", "内衣", "制服", "旗袍", "情趣内衣", "套装", "裙",
		"连身袜", "网袜", "渔网", "蕾丝", "吊带", "FM-", "情趣套装",
	}},
	{CategoryDolls, []string{
		"实体娃娃", "充气娃娃", "画皮娃娃", "腿模", "半身", "分体", "娃娃",
		"充气", "实体", "仿真", "人型", "1:1",
	}},
	{CategoryMaleToys, []string{
		"飞机杯", "名器", "男用", "男性用品", "男根", "男用软胶", "极致名器", "男用腿模",
	}},
	{CategoryFemaleToys, []string{
		"跳蛋", "震动棒", "AV棒", "女用", "女性", "按摩器", "按摩棒", "按摩仪",
		"阳具", "仿真阳具", "震动阳具", "震动", "加温棒",
	}},
	{CategoryCondoms, []string{
		"安全套", "避孕套", "condom", "套套", "水晶套", "狼牙套", "加长套",
		"加粗套", "龟头套", "套", "Durex", "杜蕾斯", "Double one", "双一",
		"MOMO", "陌陌", "第六感", "杰士邦", "冈本", "okamoto",
	}},
	{CategoryLubricants, []string{
		"润滑液", "润滑啫喱", "润滑剂", "润滑膏", "润滑油", "润滑", "lubricant",
	}},
	{CategoryEnhancement, []string{
		"延时喷剂", "延时", "喷剂", "增强", "提高", "持久", "增强器", "外用",
		"湿巾", "快感", "增感", "修护", "HB-", "黑豹", "享久", "安太医",
		"夜劲", "延时龙水",
	}},
	{CategoryCouples, []string{
		"双人", "情侣", "夫妻", "双飞", "互动", "语音", "发音", "智能互动", "智能",
	}},
	{CategoryBDSM, []string{
		"束缚", "调教", "SM", "BDSM", "捆绑", "鞭", "链", "情趣", "情趣用品",
		"道具", "骰子", "扑克", "飞行棋", "摇签", "玩范",
	}},
	{CategoryBatteries, []string{
		"电池", "USB充电", "磁吸充电", "太阳能", "充电", "USB",
	}},
	{CategoryHealth, []string{
		"医用", "测试", "试纸", "消毒", "护理", "凝胶", "洗涤器", "绷带",
		"创口贴", "退热", "晕车", "酒精", "碘伏", "早早孕", "海氏海诺",
	}},
	// Терминальное правило без ключевых слов
	{CategoryAccessories, nil},
}
