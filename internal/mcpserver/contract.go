package mcpserver

// ItemFormat describes the recent feed record returned by the journal tools.
const ItemFormat = `# Recent Item Format

Every item returned by ` + "`recent_items`" + ` and ` + "`get_item`" + ` is a JSON object:

` + "```" + `json
{
  "section": "writes",
  "subSection": "golang",
  "url": "/writes/golang/channels",
  "title": "Channels",
  "description": "First paragraph of the document, flattened",
  "date": "2024-03-01"
}
` + "```" + `

## Fields

1. **section** is one of ` + "`reads`, `writes`, `thoughts`" + `, taken from the first URL segment.
2. **subSection** is present only for nested documents (` + "`/writes/golang/channels`" + `).
   It is the second URL segment.
3. **url** is the site URL of the source document. It never ends with ` + "`/`" + `.
4. **title** is the frontmatter ` + "`title`" + `, or the last URL segment without its extension.
5. **description** is the frontmatter ` + "`description`" + `, or the document excerpt with line
   breaks folded to spaces and Markdown marker characters (` + "`#`, `>`, `*`, `_`, `~`" + `
   and backticks) removed. It is at most 140 characters.
6. **date** is the frontmatter ` + "`date`" + ` verbatim, omitted when absent.

## Ordering and filtering

- Items are ordered by date, newest first. Items without a parseable date come last,
  in discovery order.
- Documents with ` + "`draft: true`" + ` in their frontmatter are excluded.
- Section index pages (URLs ending in ` + "`/`" + `) are excluded.
`
