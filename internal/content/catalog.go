package content

import "strings"

// DefaultChapterID is the chapter used when a requested lesson passes the
// availability check but does not resolve to its own chapter content.
// Substituting it is deliberate: the curriculum whitelist is broader than
// the authored content, and an available lesson must always teach
// something rather than fail.
const DefaultChapterID = "counting"

// countingAliases all resolve to the counting chapter.
var countingAliases = []string{
	"counting", "counting fun", "counting fun adventure",
	"numbers", "count", "math basics",
}

// availableTopics is the (grade 2, math) lesson whitelist.
var availableTopics = []string{
	"counting",
	"comparing and ordering",
	"skip counting and number patterns",
	"names of numbers",
	"even and odd",
	"mixed operations: one digit",
	"mixed operations one digit",
}

// Catalog resolves lesson identifiers to chapter content and answers
// availability queries. Content is immutable once built.
type Catalog struct {
	chapters map[string]*Chapter
	aliases  map[string]string
}

// NewCatalog builds the catalog with all authored chapters.
func NewCatalog() *Catalog {
	c := &Catalog{
		chapters: make(map[string]*Chapter),
		aliases:  make(map[string]string),
	}
	c.add(countingChapter(), countingAliases...)
	return c
}

func (c *Catalog) add(ch *Chapter, aliases ...string) {
	c.chapters[ch.ID] = ch
	for _, a := range aliases {
		c.aliases[a] = ch.ID
	}
}

// Chapter looks up chapter content by lesson identifier. Lookup is
// case-insensitive and whitespace-trimmed; aliases resolve to their
// canonical chapter.
func (c *Catalog) Chapter(id string) (*Chapter, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	if canonical, ok := c.aliases[key]; ok {
		key = canonical
	}
	ch, ok := c.chapters[key]
	return ch, ok
}

// DefaultChapter returns the fallback chapter. It always exists.
func (c *Catalog) DefaultChapter() *Chapter {
	ch, _ := c.Chapter(DefaultChapterID)
	return ch
}

// Topics lists the teachable lesson identifiers, in curriculum order.
func (c *Catalog) Topics() []string {
	out := make([]string, len(availableTopics))
	copy(out, availableTopics)
	return out
}

// Available reports whether a (grade, subject, lesson) combination can be
// taught. Subject and lesson are matched case-insensitively after
// trimming.
func (c *Catalog) Available(grade int, subject, lesson string) bool {
	if grade != 2 {
		return false
	}
	if strings.ToLower(strings.TrimSpace(subject)) != "math" {
		return false
	}
	l := strings.ToLower(strings.TrimSpace(lesson))
	for _, topic := range availableTopics {
		if l == topic {
			return true
		}
	}
	return false
}
