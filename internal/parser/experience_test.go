package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalExperience(t *testing.T) {
	t.Run("重叠区间合并", func(t *testing.T) {
		text := "Acme Corp, Software Engineer, Jan 2019 - Jun 2020\n" +
			"Beta Ltd, Senior Engineer, Mar 2020 to Dec 2021"
		// 两段重叠，合并后为 2019-01 至 2021-12，共35个月
		assert.Equal(t, "2 years and 11 months", CalculateTotalExperience(text))
	})

	t.Run("单段区间", func(t *testing.T) {
		assert.Equal(t, "1 years and 5 months",
			CalculateTotalExperience("Jan 2019 - Jun 2020"))
	})

	t.Run("纯年份与全称月名", func(t *testing.T) {
		assert.Equal(t, "2 years and 0 months",
			CalculateTotalExperience("January 2018 until January 2020"))
	})

	t.Run("过早起点丢弃", func(t *testing.T) {
		assert.Equal(t, "0 years and 0 months",
			CalculateTotalExperience("1975 - 1976 factory work"))
	})

	t.Run("超长区间丢弃", func(t *testing.T) {
		assert.Equal(t, "0 years and 0 months",
			CalculateTotalExperience("1990 to 2015 various roles"))
	})

	t.Run("终点早于起点丢弃", func(t *testing.T) {
		assert.Equal(t, "0 years and 0 months",
			CalculateTotalExperience("Jun 2020 - Jan 2019"))
	})

	t.Run("Present作为终点", func(t *testing.T) {
		got := CalculateTotalExperience("Mar 2024 to Present")
		assert.NotEqual(t, "0 years and 0 months", got, "Present区间应产生非零时长")
		assert.Regexp(t, `^\d+ years and \d+ months$`, got)
	})

	t.Run("无区间返回零值串", func(t *testing.T) {
		assert.Equal(t, "0 years and 0 months", CalculateTotalExperience(""))
		assert.Equal(t, "0 years and 0 months", CalculateTotalExperience("没有任何日期的经验描述"))
	})

	t.Run("数字月份格式", func(t *testing.T) {
		assert.Equal(t, "1 years and 0 months",
			CalculateTotalExperience("03/2021 - 03/2022"))
	})

	t.Run("Sept变体归一", func(t *testing.T) {
		assert.Equal(t, "0 years and 3 months",
			CalculateTotalExperience("Sept 2021 - Dec 2021"))
	})
}
