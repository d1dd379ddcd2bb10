package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLocation(t *testing.T) {
	t.Run("标签形式", func(t *testing.T) {
		got := ExtractLocation("Rohan Mehta\nAddress: Pune, Maharashtra", false)
		require.NotNil(t, got)
		assert.Contains(t, *got, "Pune")
	})

	t.Run("城市邦形状", func(t *testing.T) {
		got := ExtractLocation("Priya Sharma\nMumbai, Maharashtra\npriya@example.com", false)
		require.NotNil(t, got)
		assert.Contains(t, *got, "Mumbai")
	})

	t.Run("裸地名扫描", func(t *testing.T) {
		got := ExtractLocation("Amit Patel\nSenior Consultant\nHyderabad\n", false)
		require.NotNil(t, got)
		assert.Equal(t, "Hyderabad", *got)
	})

	t.Run("邮箱电话行不算位置", func(t *testing.T) {
		got := ExtractLocation("amit@example.com\n+91 98765 43210", false)
		assert.Nil(t, got)
	})

	t.Run("超长描述拒绝", func(t *testing.T) {
		text := "Location: worked across multiple client engagements delivering large scale systems"
		got := ExtractLocation(text, false)
		assert.Nil(t, got, "超过50字符的候选是描述而不是位置")
	})

	t.Run("无位置返回nil", func(t *testing.T) {
		assert.Nil(t, ExtractLocation("", false))
	})
}
