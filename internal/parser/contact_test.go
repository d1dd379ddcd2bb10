package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmail(t *testing.T) {
	t.Run("常规邮箱", func(t *testing.T) {
		got := ExtractEmail("联系方式: rahul.verma@example.com / 9876543210")
		require.NotNil(t, got)
		assert.Equal(t, "rahul.verma@example.com", *got)
	})

	t.Run("无邮箱返回nil", func(t *testing.T) {
		assert.Nil(t, ExtractEmail("没有任何联系方式的文本"))
	})
}

func TestExtractPhone(t *testing.T) {
	t.Run("十位号码按默认地区解析", func(t *testing.T) {
		got := ExtractPhone("Phone: 98765 43210", "IN")
		require.NotNil(t, got, "6-9开头的10位号码应按IN解析通过")
		assert.Equal(t, "+91 98765 43210", *got, "输出应为国际格式")
	})

	t.Run("无分隔符的裸十位号码", func(t *testing.T) {
		got := ExtractPhone("9876543210", "IN")
		require.NotNil(t, got)
		assert.Equal(t, "+91 98765 43210", *got)
	})

	t.Run("带国家码的号码", func(t *testing.T) {
		got := ExtractPhone("Mobile: +91-98765-43210", "IN")
		require.NotNil(t, got)
		assert.Equal(t, "+91 98765 43210", *got)
	})

	t.Run("位数不足的数字串拒绝", func(t *testing.T) {
		assert.Nil(t, ExtractPhone("编号 12345-678", "IN"), "去掉分隔符后不足10位的候选应被丢弃")
	})

	t.Run("无号码返回nil", func(t *testing.T) {
		assert.Nil(t, ExtractPhone("plain text without numbers", "IN"))
	})

	t.Run("空地区回退IN", func(t *testing.T) {
		got := ExtractPhone("98765 43210", "")
		require.NotNil(t, got)
		assert.Equal(t, "+91 98765 43210", *got)
	})
}

func TestExtractLinkedIn(t *testing.T) {
	t.Run("完整URL", func(t *testing.T) {
		got := ExtractLinkedIn("https://www.linkedin.com/in/rahul-verma profile")
		require.NotNil(t, got)
		assert.Equal(t, "https://www.linkedin.com/in/rahul-verma", *got)
	})

	t.Run("无协议头自动补全", func(t *testing.T) {
		got := ExtractLinkedIn("linkedin.com/in/priya_sharma")
		require.NotNil(t, got)
		assert.Equal(t, "https://linkedin.com/in/priya_sharma", *got)
	})

	t.Run("标签形式合成URL", func(t *testing.T) {
		got := ExtractLinkedIn("LinkedIn: rahulverma")
		require.NotNil(t, got)
		assert.Equal(t, "https://www.linkedin.com/in/rahulverma", *got)
	})

	t.Run("无痕迹返回nil", func(t *testing.T) {
		assert.Nil(t, ExtractLinkedIn("no social links here"))
	})
}

func TestExtractGitHub(t *testing.T) {
	t.Run("完整URL", func(t *testing.T) {
		got := ExtractGitHub("code at github.com/rahulverma")
		require.NotNil(t, got)
		assert.Equal(t, "https://github.com/rahulverma", *got)
	})

	t.Run("标签形式合成URL", func(t *testing.T) {
		got := ExtractGitHub("GitHub: priyasharma")
		require.NotNil(t, got)
		assert.Equal(t, "https://github.com/priyasharma", *got)
	})

	t.Run("无痕迹返回nil", func(t *testing.T) {
		assert.Nil(t, ExtractGitHub("plain text"))
	})
}
