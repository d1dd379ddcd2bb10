package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTextBlock(t *testing.T) {
	t.Run("基础清洗", func(t *testing.T) {
		in := "Hello World\t!\r\nSecond   line   \n"
		out := NormalizeTextBlock(in)
		assert.Equal(t, "Hello World !\nSecond line", out, "NBSP/制表符/多余空格都应折叠为单个空格")
	})

	t.Run("页脚剔除", func(t *testing.T) {
		in := "Experience at Acme\nPage 1 of 3\nBuilt pipelines"
		out := NormalizeTextBlock(in)
		assert.NotContains(t, out, "Page 1 of 3", "页码页脚行应被剔除")
		assert.Contains(t, out, "Experience at Acme")
		assert.Contains(t, out, "Built pipelines")
	})

	t.Run("连续空行折叠", func(t *testing.T) {
		in := "a\n\n\n\n\nb"
		assert.Equal(t, "a\n\nb", NormalizeTextBlock(in), "三个以上连续换行应折叠为两个")
	})

	t.Run("幂等性", func(t *testing.T) {
		inputs := []string{
			"Hello World\t!\r\nSecond   line",
			"a\n\n\n\nb\nPage 2 of 2\nc",
			"  leading and trailing  ",
			"",
		}
		for _, in := range inputs {
			once := NormalizeTextBlock(in)
			twice := NormalizeTextBlock(once)
			assert.Equal(t, once, twice, "规范化应当幂等: %q", in)
		}
	})
}

func TestDehyphenateLines(t *testing.T) {
	t.Run("断词合并", func(t *testing.T) {
		out := DehyphenateLines([]string{"strong collabo-", "ration skills"})
		assert.Equal(t, []string{"strong collaboration skills"}, out, "行尾连字符加小写行首应合并为一个词")
	})

	t.Run("大写行首不合并", func(t *testing.T) {
		in := []string{"worked on X-", "Ray systems"}
		out := DehyphenateLines(in)
		assert.Equal(t, in, out, "下一行以大写开头时连字符可能是真实词形，不应合并")
	})

	t.Run("无连字符原样保留", func(t *testing.T) {
		in := []string{"line one", "line two"}
		assert.Equal(t, in, DehyphenateLines(in))
	})
}
