package trends

import "strings"

// areaCodes maps normalized province names to Tour API region codes.
var areaCodes = map[string]string{
	"서울": "1", "인천": "2", "대전": "3", "대구": "4",
	"광주": "5", "부산": "6", "울산": "7", "세종": "8",
	"경기": "31", "강원": "32", "충북": "33", "충남": "34",
	"경북": "35", "경남": "36", "전북": "37", "전남": "38", "제주": "39",
}

// sidoNames maps the long province names used in Naver addresses to the
// short form the Tour API codes are keyed by.
var sidoNames = map[string]string{
	"서울특별시": "서울", "인천광역시": "인천", "대전광역시": "대전",
	"대구광역시": "대구", "광주광역시": "광주", "부산광역시": "부산",
	"울산광역시": "울산", "세종특별자치시": "세종", "경기도": "경기",
	"강원도": "강원", "충청북도": "충북", "충청남도": "충남",
	"경상북도": "경북", "경상남도": "경남", "전라북도": "전북",
	"전라남도": "전남", "제주특별자치도": "제주",
}

// areaCodeForAddress extracts the province from a listing address and maps it
// to its Tour API area code. Unmapped provinces yield an empty code.
func areaCodeForAddress(address string) string {
	sido, _, _ := strings.Cut(address, " ")
	if short, ok := sidoNames[sido]; ok {
		return areaCodes[short]
	}

	return ""
}
