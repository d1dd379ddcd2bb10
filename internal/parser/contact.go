package parser

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]+`)

	// rePhoneCandidate 宽松的号码候选：允许分隔符和括号，总长下限10字符
	rePhoneCandidate = regexp.MustCompile(`\+?\d[\d\-\s()]{8,}\d`)
	reNonDigit       = regexp.MustCompile(`\D`)

	reLinkedInURL  = regexp.MustCompile(`(https?://)?(www\.)?(linkedin\.com/in/[a-zA-Z0-9_-]+)`)
	reLinkedInUser = regexp.MustCompile(`(?i)linkedin[:\s]*([a-zA-Z0-9_-]+)`)
	reGitHubURL    = regexp.MustCompile(`(https?://)?(www\.)?(github\.com/[a-zA-Z0-9_-]+)`)
	reGitHubUser   = regexp.MustCompile(`(?i)github[:\s]*([a-zA-Z0-9_-]+)`)
)

// ExtractEmail 提取文本中第一个邮箱地址
func ExtractEmail(text string) *string {
	if m := reEmail.FindString(text); m != "" {
		return &m
	}
	return nil
}

// ExtractPhone 提取并校验电话号码，输出国际格式
// 三级解析：10位且6-9开头的裸号码按默认地区解析；原串按默认地区解析；
// 原串不带地区解析（要求自带国家码）。第一个通过校验的号码胜出。
func ExtractPhone(text, defaultRegion string) *string {
	if defaultRegion == "" {
		defaultRegion = "IN"
	}

	for _, raw := range rePhoneCandidate.FindAllString(text, -1) {
		cleaned := strings.TrimSpace(raw)
		digits := reNonDigit.ReplaceAllString(cleaned, "")
		if len(digits) < 10 || len(digits) > 15 {
			continue
		}

		if len(digits) == 10 && digits[0] >= '6' && digits[0] <= '9' {
			if formatted := validateNumber(digits, defaultRegion); formatted != nil {
				return formatted
			}
		}
		if formatted := validateNumber(cleaned, defaultRegion); formatted != nil {
			return formatted
		}
		if formatted := validateNumber(cleaned, ""); formatted != nil {
			return formatted
		}
	}
	return nil
}

// validateNumber 解析+校验，通过则返回国际格式
func validateNumber(number, region string) *string {
	pn, err := phonenumbers.Parse(number, region)
	if err != nil {
		return nil
	}
	if !phonenumbers.IsValidNumber(pn) {
		return nil
	}
	formatted := phonenumbers.Format(pn, phonenumbers.INTERNATIONAL)
	return &formatted
}

// ExtractLinkedIn 提取LinkedIn主页链接
// 先找完整URL（必要时补协议头），再退化到 "linkedin: username" 标签形式
func ExtractLinkedIn(text string) *string {
	if m := reLinkedInURL.FindString(text); m != "" {
		if !strings.HasPrefix(m, "http") {
			m = "https://" + m
		}
		return &m
	}
	if m := reLinkedInUser.FindStringSubmatch(text); m != nil {
		url := "https://www.linkedin.com/in/" + m[1]
		return &url
	}
	return nil
}

// ExtractGitHub 提取GitHub主页链接，策略与LinkedIn一致
func ExtractGitHub(text string) *string {
	if m := reGitHubURL.FindString(text); m != "" {
		if !strings.HasPrefix(m, "http") {
			m = "https://" + m
		}
		return &m
	}
	if m := reGitHubUser.FindStringSubmatch(text); m != nil {
		url := "https://github.com/" + m[1]
		return &url
	}
	return nil
}
