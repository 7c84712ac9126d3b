package cities

import "sort"

// DefaultCode is used when a request does not name a city.
const DefaultCode = "taipei"

// locationNames maps the short codes accepted by the API to the place names
// the CWA datasets are keyed by.
var locationNames = map[string]string{
	"taipei":         "臺北市",
	"new-taipei":     "新北市",
	"taoyuan":        "桃園市",
	"taichung":       "臺中市",
	"tainan":         "臺南市",
	"kaohsiung":      "高雄市",
	"keelung":        "基隆市",
	"hsinchu-city":   "新竹市",
	"hsinchu-county": "新竹縣",
	"miaoli":         "苗栗縣",
	"changhua":       "彰化縣",
	"nantou":         "南投縣",
	"yunlin":         "雲林縣",
	"chiayi-city":    "嘉義市",
	"chiayi-county":  "嘉義縣",
	"pingtung":       "屏東縣",
	"yilan":          "宜蘭縣",
	"hualien":        "花蓮縣",
	"taitung":        "臺東縣",
	"penghu":         "澎湖縣",
	"kinmen":         "金門縣",
	"lienchiang":     "連江縣",
}

// Resolver turns a city code into an upstream location name.
type Resolver func(code string) string

// Resolve returns the location name for code, or code itself when it is not
// a known city. Callers may pass a location name directly.
func Resolve(code string) string {
	if name, ok := locationNames[code]; ok {
		return name
	}
	return code
}

// Codes returns every known city code in lexical order.
func Codes() []string {
	codes := make([]string, 0, len(locationNames))
	for code := range locationNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
