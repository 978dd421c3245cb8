package mcpserver

// CatalogFormat describes the line format of the catalog files so that LLM
// consumers can interpret lookup results.
const CatalogFormat = `# zoodesk Catalog Format

Each catalog (animals, habitats) is a plain UTF-8 text file read line by line.

## Listing headers

Lines starting with ` + "`Details`" + ` announce a record. The first token after
` + "`Details`" + ` (and an optional ` + "`on`" + `) is the record name.

- Animals use the plural, which is trimmed by one character:
  ` + "`Details on lions`" + ` lists ` + "`lion`" + `.
- Habitats use the token as-is: ` + "`Details on penguin habitat`" + ` lists ` + "`penguin`" + `.

## Detail blocks

A lookup capitalizes the query (` + "`LION`" + ` becomes ` + "`Lion`" + `) and takes the first
line that ends with it, for example ` + "`Animal - Lion`" + `. That line and every
following line up to the next blank line form the detail block.

## Warnings

A detail line that starts or ends with ` + "`*`" + ` is a warning:

` + "```" + `
*****Health concerns: Cut on left front paw*****
` + "```" + `

The asterisks are removed, the text before the first colon is the warning
category and the text after ` + "`: `" + ` is the message. Marked lines without a colon
are shown as plain text and raise no warning.

## Example

` + "```" + `
Details on lions
Details on tigers

Animal - Lion
Name: Leo
Age: 5
*****Health concerns: Cut on left front paw*****
Feeding schedule: Twice daily

Animal - Tiger
Name: Maj
` + "```" + `
`
