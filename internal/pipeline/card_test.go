package pipeline

import (
	"reflect"
	"testing"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()

	tests := []struct {
		name  string
		title string
		items []string
		want  Card
	}{
		{
			name:  "full layout",
			title: "콘텐츠 기획자",
			items: []string{
				"역할: 기획 담당",
				"주요 업무",
				"왜 중요한가?",
				"핵심 포인트",
				"활용 Tip",
				"첫 번째 팁",
				"두 번째 팁",
			},
			want: Card{
				Title:       "콘텐츠 기획자",
				Theme:       DefaultTheme(),
				Subtitle:    "기획 담당",
				MainHeading: "왜 중요한가?",
				MainItems:   []string{"주요 업무", "핵심 포인트"},
				TipBox:      &TipBox{Title: "활용 Tip", Items: []string{"첫 번째 팁", "두 번째 팁"}},
			},
		},
		{
			name:  "only the first role line is a subtitle",
			title: "팀 구성",
			items: []string{"Role: 편집자", "role: 검수자"},
			want: Card{
				Title:     "팀 구성",
				Theme:     ClassifyTheme("팀 구성"),
				Subtitle:  "편집자",
				MainItems: []string{"role: 검수자"},
			},
		},
		{
			name:  "full-width colon in role",
			title: "x",
			items: []string{"역할： 촬영"},
			want:  Card{Title: "x", Theme: DefaultTheme(), Subtitle: "촬영"},
		},
		{
			name:  "inline colon is not a tip header",
			title: "x",
			items: []string{"전략: 매일 업로드하기"},
			want:  Card{Title: "x", Theme: DefaultTheme(), MainItems: []string{"전략: 매일 업로드하기"}},
		},
		{
			name:  "trailing colon tip header",
			title: "x",
			items: []string{"실전 전략:", "하루 한 편"},
			want: Card{
				Title:  "x",
				Theme:  DefaultTheme(),
				TipBox: &TipBox{Title: "실전 전략", Items: []string{"하루 한 편"}},
			},
		},
		{
			name:  "long tip line stays in main",
			title: "x",
			items: []string{"이 전략은 아주 길어서 삼십 글자를 훌쩍 넘어가는 문장입니다 정말로"},
			want: Card{
				Title:     "x",
				Theme:     DefaultTheme(),
				MainItems: []string{"이 전략은 아주 길어서 삼십 글자를 훌쩍 넘어가는 문장입니다 정말로"},
			},
		},
		{
			name:  "main heading switches back from box",
			title: "x",
			items: []string{"Tip", "a", "장점:", "b"},
			want: Card{
				Title:       "x",
				Theme:       DefaultTheme(),
				MainHeading: "장점",
				MainItems:   []string{"b"},
				TipBox:      &TipBox{Title: "Tip", Items: []string{"a"}},
			},
		},
		{
			name:  "keyword without punctuation is body text",
			title: "x",
			items: []string{"왜 이렇게 하는지 설명"},
			want:  Card{Title: "x", Theme: DefaultTheme(), MainItems: []string{"왜 이렇게 하는지 설명"}},
		},
		{
			name:  "empty items are skipped",
			title: "x",
			items: []string{"", "<<1,2>>", "  ", "본문"},
			want:  Card{Title: "x", Theme: DefaultTheme(), MainItems: []string{"본문"}},
		},
		{
			name:  "items are normalized",
			title: "x",
			items: []string{"**음팔** 설정"},
			want:  Card{Title: "x", Theme: DefaultTheme(), MainItems: []string{"<strong>Opal (오팔)</strong> 설정"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseCard(tt.title, tt.items, n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCard() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestCard_Text(t *testing.T) {
	t.Parallel()

	c := Card{
		MainItems: []string{"a", "b"},
		TipBox:    &TipBox{Items: []string{"c"}},
	}
	if got := c.Text(); got != "a\nb\nc" {
		t.Errorf("Text() = %q, want %q", got, "a\nb\nc")
	}
	if got := (Card{}).Text(); got != "" {
		t.Errorf("empty Text() = %q", got)
	}
}
