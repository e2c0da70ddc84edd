package mdcontents

// Fixtures mirror the documents the contents tool has always been checked
// against: a file with headings of every level, code, quotes and #tags.

const complexDocument = "# Hello\n**Hello text!**\n\n## World\nText with a paragraph\n\nAnother paragraph\n\n" +
	"### How\n```js\nfunction thisIsHow() {\n    console.log(\"we do it\")\n}\n```\n\n" +
	"#### Are\n> Othr forms of text formatting are available\n##### You?\n\n" +
	"## I'm\n#trees\n###### Good\n#seas\n# Thank\nText and then a #tag, why not?\n" +
	"### You\n`random code snippets` that aren't long enough for a big box\n#### For\n##### Asking\n"

const complexContents = "\t1. Hello\n\t\t1.1. World\n\t\t\t1.1.1. How\n\t\t\t\t1.1.1.1. Are\n\t\t\t\t\t1.1.1.1.1. You?\n" +
	"\t\t1.2. I'm\n\t\t\t\t\t\t1.2.1.1.1.1. Good\n\t2. Thank\n\t\t\t2.1.1. You\n\t\t\t\t2.1.1.1. For\n\t\t\t\t\t2.1.1.1.1. Asking\n"

const eachLevelDocument = "# Hello\n## World\n### Three\n#### Four\n##### Five\n###### Six\n"

const eachLevelContents = "\t1. Hello\n\t\t1.1. World\n\t\t\t1.1.1. Three\n\t\t\t\t1.1.1.1. Four\n" +
	"\t\t\t\t\t1.1.1.1.1. Five\n\t\t\t\t\t\t1.1.1.1.1.1. Six\n"
