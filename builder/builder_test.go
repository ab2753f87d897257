package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParentPattern(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "numeric id wildcarded and host escaped",
			raw:  "GET https://api.example.com/services/users/123456",
			want: `GET https://api\.example\.com/services/users/(.*?)`,
		},
		{
			name: "uuid wildcarded",
			raw:  "https://api.example.com/sessions/550e8400-e29b-41d4-a716-446655440000",
			want: `https://api\.example\.com/sessions/(.*?)`,
		},
		{
			name: "short numeric id stays literal",
			raw:  "GET https://api.example.com/users/12345",
			want: `GET https://api\.example\.com/users/12345`,
		},
		{
			name: "digit bearing segment split at separators",
			raw:  "https://h/files/report-2024-backup",
			want: `https://h/files/(.*?)`,
		},
		{
			name: "digit bearing segment with short parts stays literal",
			raw:  "https://h/files/rep-202-bak",
			want: `https://h/files/rep-202-bak`,
		},
		{
			name: "fingerprinted asset wildcarded",
			raw:  "https://cdn.example.com/assets/app.3f9a1c2b4d.js",
			want: `https://cdn\.example\.com/assets/(.*?)`,
		},
		{
			name: "long query value wildcarded with escaped separator",
			raw:  "POST https://h/oauth/token?grant_type=client_credentials&destination=UserDataWarehouse1",
			want: `POST https://h/oauth/token\?grant_type=(.*?)&destination=(.*?)`,
		},
		{
			name: "numeric query value wildcarded at any length",
			raw:  "https://h/items?id=42&tab=summary",
			want: `https://h/items\?id=(.*?)&tab=summary`,
		},
		{
			name: "hex and dash query value wildcarded",
			raw:  "https://h/spans?trace=deadbeef-cafe",
			want: `https://h/spans\?trace=(.*?)`,
		},
		{
			name: "root path",
			raw:  "GET https://h/",
			want: "GET https://h/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParentPattern(tt.raw))
		})
	}
}

func TestSubPattern(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "numeric id wildcarded without escaping",
			raw:  "GET https://api.example.com/services/users/123456",
			want: "GET https://api.example.com/services/users/(.*?)",
		},
		{
			name: "digit bearing segment kept literal",
			raw:  "https://h/files/report-2024-backup",
			want: "https://h/files/report-2024-backup",
		},
		{
			name: "query values never generalized",
			raw:  "https://h/items?id=42&session=0123456789abcdef0123",
			want: "https://h/items?id=42&session=0123456789abcdef0123",
		},
		{
			name: "volatile path tokens still wildcarded",
			raw:  "https://h/sessions/550e8400-e29b-41d4-a716-446655440000/refresh",
			want: "https://h/sessions/(.*?)/refresh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubPattern(tt.raw))
		})
	}
}

func TestBuild_RepeatedQueryKeys(t *testing.T) {
	b := Builder{Aggressive: true, Escape: true}
	got := b.Build("https://h/search?tag=alpha&page=2&tag=beta")
	assert.Equal(t, `https://h/search\?tag=alpha&tag=beta&page=(.*?)`, got)
}

func TestBuild_UnparsableDegradesToLiteral(t *testing.T) {
	raw := "GET https://h/\x00bad"

	b := Builder{}
	assert.Equal(t, raw, b.Build(raw))

	be := Builder{Escape: true}
	assert.Equal(t, EscapeLiteral(raw), be.Build(raw))
}

func TestBuild_MethodPreserved(t *testing.T) {
	for _, raw := range []string{
		"DELETE https://h/items/123456",
		"https://h/items/123456",
	} {
		b := Builder{}
		got := b.Build(raw)
		if raw[0] == 'D' {
			assert.Equal(t, "DELETE https://h/items/(.*?)", got)
		} else {
			assert.Equal(t, "https://h/items/(.*?)", got)
		}
	}
}
