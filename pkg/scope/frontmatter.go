package scope

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// encodeFrontmatter renders a Markdown document with a YAML frontmatter
// block followed by the body.
func encodeFrontmatter(meta any, body string) ([]byte, error) {
	head, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encoding frontmatter: %w", err)
	}
	var b strings.Builder
	b.WriteString(frontmatterDelimiter + "\n")
	b.Write(head)
	b.WriteString(frontmatterDelimiter + "\n")
	b.WriteString(body)
	return []byte(b.String()), nil
}

// decodeFrontmatter splits a Markdown file into its YAML frontmatter and
// body. A file without a frontmatter block decodes into an empty meta and
// the whole content as body.
func decodeFrontmatter(data []byte, meta any) (body string, err error) {
	text := string(data)
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return text, nil
	}
	rest := text[len(frontmatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
	if end < 0 {
		return text, nil
	}
	head := rest[:end+1]
	body = rest[end+len(frontmatterDelimiter)+2:]
	if err := yaml.Unmarshal([]byte(head), meta); err != nil {
		return "", fmt.Errorf("decoding frontmatter: %w", err)
	}
	return body, nil
}
