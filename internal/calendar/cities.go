package calendar

import "sort"

// ReferenceLongitude is the civil-time meridian (120°E) that the true
// solar time correction measures against.
const ReferenceLongitude = 120.0

// cityLongitudes maps major Chinese cities to degrees east. Charts for
// cities not listed here fall back to the reference meridian, i.e. no
// correction.
var cityLongitudes = map[string]float64{
	"北京":   116.41,
	"上海":   121.47,
	"广州":   113.26,
	"深圳":   114.06,
	"成都":   104.07,
	"杭州":   120.16,
	"重庆":   106.55,
	"武汉":   114.31,
	"西安":   108.94,
	"南京":   118.80,
	"天津":   117.20,
	"苏州":   120.58,
	"郑州":   113.63,
	"长沙":   112.94,
	"沈阳":   123.43,
	"青岛":   120.38,
	"大连":   121.61,
	"厦门":   118.09,
	"福州":   119.30,
	"昆明":   102.83,
	"哈尔滨":  126.53,
	"济南":   117.12,
	"长春":   125.32,
	"石家庄":  114.51,
	"合肥":   117.23,
	"南昌":   115.86,
	"南宁":   108.37,
	"贵阳":   106.63,
	"太原":   112.55,
	"乌鲁木齐": 87.62,
	"兰州":   103.83,
	"呼和浩特": 111.75,
	"银川":   106.23,
	"西宁":   101.78,
	"拉萨":   91.11,
	"海口":   110.20,
	"香港":   114.17,
	"澳门":   113.55,
	"台北":   121.56,
}

// CityLongitude looks up a city's longitude in degrees east.
func CityLongitude(city string) (float64, bool) {
	lon, ok := cityLongitudes[city]
	return lon, ok
}

// LongitudeOrDefault resolves a city to its longitude, falling back to
// the reference meridian for unknown or empty cities.
func LongitudeOrDefault(city string) float64 {
	if lon, ok := cityLongitudes[city]; ok {
		return lon
	}
	return ReferenceLongitude
}

// Cities returns the known city names sorted for stable menus.
func Cities() []string {
	names := make([]string, 0, len(cityLongitudes))
	for name := range cityLongitudes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
