package narrative

import (
	"fmt"
	"strings"
)

func summaryPrompt(subject string) string {
	return fmt.Sprintf("당신은 복지기관에서 사용하는 상담 보고서 요약을 작성하는 역할입니다.\n\n"+
		"당신에게 제공된 상담 원문을 바탕으로 대상자인 **%[1]s님**의 상태를 자연스럽고 정확하게 요약하세요.\n\n"+
		"다음 조건을 반드시 지켜주세요:\n"+
		"- 문장은 '%[1]s님은 ~하고 계십니다'와 같이 3인칭 존칭 시점으로 작성하세요.\n"+
		"- 첫 문장은 '네,', '안녕하세요' 등으로 시작하지 마세요.\n"+
		"- '~입니다.', '~있습니다.', '~어려워하고 계십니다.'와 같이 자연스럽고 진단적인 톤을 사용하세요.\n"+
		"- GPT형 멘트(예: 요약해 드리겠습니다)는 쓰지 마세요.\n"+
		"- 한 문단으로 작성하며, 항목 구분이나 줄바꿈 없이 매끄럽게 연결된 문장으로 서술하세요.", subject)
}

const actionPrompt = "당신은 복지기관 상담 보고서의 '조치사항'을 작성하는 역할입니다. " +
	"아래 상담 내용을 참고하여, 대상자에게 필요한 조치사항을 한 문장으로 작성하세요."

// Field describes one key of the structured output
type Field struct {
	Key         string
	Description string
	// Rows marks an array field; its elements use these keys
	Rows []string
}

// extractionPrompt builds the instruction listing every field as a JSON skeleton
func extractionPrompt(source string, schema []Field, fixed map[string]string) string {
	var b strings.Builder

	b.WriteString("아래는 요양보호 일지의 요약이야.\n")
	b.WriteString(source)
	b.WriteString("\n\n이 내용을 바탕으로 주간보고서의 모든 항목을 아래 JSON 형식으로 만들어줘. ")
	b.WriteString("각 항목은 대화에 정보가 없더라도 맥락을 바탕으로 반드시 추정해서 한 문장 이상으로 작성해줘.\n")

	for _, f := range schema {
		if f.Description != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.Key, f.Description)
		}
	}

	if len(fixed) > 0 {
		b.WriteString("다음 항목은 이미 확정된 값이야. 한 글자도 바꾸지 말고 그대로 JSON에 넣어줘.\n")
		for _, f := range schema {
			if v, ok := fixed[f.Key]; ok {
				fmt.Fprintf(&b, "%s: %q\n", f.Key, v)
			}
		}
	}

	b.WriteString("아래 JSON 형식으로 반환해줘.\n{\n")
	for i, f := range schema {
		sep := ","
		if i == len(schema)-1 {
			sep = ""
		}
		if len(f.Rows) > 0 {
			cols := make([]string, len(f.Rows))
			for j, r := range f.Rows {
				cols[j] = fmt.Sprintf("%q: \"\"", r)
			}
			fmt.Fprintf(&b, "  %q: [\n    {%s},\n    ...\n  ]%s\n", f.Key, strings.Join(cols, ", "), sep)
			continue
		}
		fmt.Fprintf(&b, "  %q: \"\"%s\n", f.Key, sep)
	}
	b.WriteString("}\n")
	b.WriteString("반드시 코드블록 없이, key와 value 모두 쌍따옴표로 감싼 올바른 JSON만 반환해줘. ")
	b.WriteString("설명, 주석, 코드블록, 불필요한 텍스트 없이 JSON만 출력해.")

	return b.String()
}
