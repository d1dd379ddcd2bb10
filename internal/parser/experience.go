package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// reDateRange 经验章节里的日期区间："Jan 2019 - Jun 2020"、"2018 to Present"、
// "03/2021 – 09/2022" 等。月名可全称可缩写，分隔词覆盖常见写法。
var reDateRange = regexp.MustCompile(
	`(?i)(?P<start>(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|` +
		`Sep(?:t)?(?:ember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?|\d{1,2}[-/])\s*\d{4}|\d{4})\s*` +
		`(?:to|–|-|—|until|upto|through)\s*` +
		`(?P<end>(?:Present|Now|Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|` +
		`Aug(?:ust)?|Sep(?:t)?(?:ember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?|\d{1,2}[-/])\s*\d{4}|\d{4}|Present|Now)`)

var (
	reSeptVariant  = regexp.MustCompile(`(?i)\bSept\b`)
	rePresentWord  = regexp.MustCompile(`(?i)present|now`)
	reMonthLeading = regexp.MustCompile(`(?i)^[a-z]+`)
)

// dateInterval 一段雇佣区间
type dateInterval struct {
	start, end time.Time
}

// parseRangeDate 解析区间端点
// 先把 "Sept" 归一成 "Sep" 并把月名规范成首字母大写（time.Parse对大小写敏感），
// 再依次尝试支持的布局
func parseRangeDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(reSeptVariant.ReplaceAllString(s, "Sep"))
	s = reMonthLeading.ReplaceAllStringFunc(s, func(m string) string {
		return titleCase(m)
	})
	for _, layout := range []string{"Jan 2006", "January 2006", "1/2006", "1-2006", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// monthsBetween 两个日期之间的整月数
func monthsBetween(s, e time.Time) int {
	months := (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
	if e.Day() < s.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// CalculateTotalExperience 从经验章节文本计算总工作时长
// 流程：提取全部日期区间→丢弃明显异常的（起点早于1980、单段超20年、
// 终点早于起点）→按起点排序后扫描合并重叠区间→逐段累加月数。
// 两道封顶：不超过最早起点到当前时刻的跨度，也不超过50年。
// 输出固定为 "N years and M months"；没有可用区间时返回零值串。
func CalculateTotalExperience(experienceText string) string {
	now := time.Now()
	var intervals []dateInterval

	for _, m := range reDateRange.FindAllStringSubmatch(experienceText, -1) {
		startStr := strings.TrimSpace(m[1])
		endStr := strings.TrimSpace(m[2])

		start, ok := parseRangeDate(startStr)
		if !ok {
			continue
		}
		var end time.Time
		if rePresentWord.MatchString(endStr) {
			end = now
		} else {
			if end, ok = parseRangeDate(endStr); !ok {
				continue
			}
		}

		if end.Before(start) {
			continue
		}
		if start.Year() < 1980 {
			continue
		}
		if end.Year()-start.Year() > 20 {
			continue
		}
		intervals = append(intervals, dateInterval{start: start, end: end})
	}

	if len(intervals) == 0 {
		return "0 years and 0 months"
	}

	sort.Slice(intervals, func(a, b int) bool {
		return intervals[a].start.Before(intervals[b].start)
	})

	merged := []dateInterval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if !iv.start.After(last.end) {
			if iv.end.After(last.end) {
				last.end = iv.end
			}
		} else {
			merged = append(merged, iv)
		}
	}

	totalMonths := 0
	for _, iv := range merged {
		totalMonths += monthsBetween(iv.start, iv.end)
	}

	if maxMonths := monthsBetween(merged[0].start, now); totalMonths > maxMonths {
		totalMonths = maxMonths
	}
	if totalMonths > 50*12 {
		totalMonths = 50 * 12
	}

	return fmt.Sprintf("%d years and %d months", totalMonths/12, totalMonths%12)
}
