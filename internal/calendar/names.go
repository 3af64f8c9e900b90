package calendar

// Heavenly stems, earthly branches and the zodiac animals that follow the
// branches.
var (
	heavenlyStems   = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	earthlyBranches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	zodiacAnimals   = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}
)

// solarTermNames lists the 24 terms in Gregorian order, starting from 小寒
// in early January.
var solarTermNames = [24]string{
	"小寒", "大寒", "立春", "雨水", "惊蛰", "春分",
	"清明", "谷雨", "立夏", "小满", "芒种", "夏至",
	"小暑", "大暑", "立秋", "处暑", "白露", "秋分",
	"寒露", "霜降", "立冬", "小雪", "大雪", "冬至",
}

var (
	// chineseDigits doubles as the weekday suffix table (index 0 is 日 for Sunday).
	chineseDigits   = [11]string{"日", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
	dayTensPrefixes = [4]string{"初", "十", "廿", "卅"}
	monthNames      = [12]string{"正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "腊"}
)

const (
	monthSuffix   = "月"
	leapPrefix    = "闰"
	weekdayPrefix = "星期"
)

// Western zodiac signs indexed by month, with 摩羯 at both ends so that
// a date before the month's cutoff day can step back one slot.
var (
	zodiacSigns   = [13]string{"摩羯", "水瓶", "双鱼", "白羊", "金牛", "双子", "巨蟹", "狮子", "处女", "天秤", "天蝎", "射手", "摩羯"}
	zodiacCutoffs = [12]int{20, 19, 21, 21, 21, 22, 23, 23, 23, 23, 22, 22}
)

const zodiacSuffix = "座"

// daysPerSolarMonth is the common-year length of each Gregorian month.
var daysPerSolarMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
