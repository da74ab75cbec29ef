package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryCookies(t *testing.T) {
	testCases := []struct {
		description string
		setCookie   []string
		expect      string
	}{
		{
			description: "single cookie with attributes",
			setCookie:   []string{"session_id=abc123; Expires=Wed, 21 Oct 2026 07:28:00 GMT; Max-Age=604800; HttpOnly; Path=/"},
			expect:      "session_id=abc123",
		},
		{
			description: "multiple cookies joined",
			setCookie: []string{
				"session_id=abc123; Path=/",
				"frontend_lang=en_US; Secure; SameSite=Lax",
			},
			expect: "session_id=abc123; frontend_lang=en_US",
		},
		{
			description: "no cookies",
			setCookie:   nil,
			expect:      "",
		},
		{
			description: "attribute-only value discarded",
			setCookie:   []string{"; Path=/"},
			expect:      "",
		},
		{
			description: "empty value discarded",
			setCookie:   []string{"session_id=; Path=/"},
			expect:      "",
		},
		{
			description: "value containing equals kept intact",
			setCookie:   []string{"token=a=b=c; Path=/"},
			expect:      "token=a=b=c",
		},
	}

	for _, testCase := range testCases {
		actual := PrimaryCookies(testCase.setCookie)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
