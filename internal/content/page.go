// Package content holds the Arabic explanatory pages shown for each topic.
package content

import "github.com/abhisek/hayakil/internal/catalog"

// Card is a titled group of short facts.
type Card struct {
	Icon  string
	Title string
	Lines []string
}

// Code is a titled C++ listing.
type Code struct {
	Title  string
	Source string
}

// Section is one heading of a page with its prose, cards and listings.
type Section struct {
	Heading string
	Text    string
	Cards   []Card
	Code    []Code
}

// Page is the full explanatory content of a topic.
type Page struct {
	Title             string
	Intro             string
	Sections          []Section
	UnderConstruction bool
}

// PageFor returns the page of id. Unknown ids yield an empty page.
func PageFor(id catalog.TopicID) Page {
	switch id {
	case catalog.TopicArrays:
		return arraysPage
	case catalog.TopicLinkedList:
		return linkedListPage
	case catalog.TopicDoubly:
		return doublyPage
	case catalog.TopicCircular:
		return circularPage
	case catalog.TopicStack:
		return stackPage
	case catalog.TopicQueue:
		return queuePage
	case catalog.TopicTrees:
		return treesPage
	case catalog.TopicBST:
		return bstPage
	default:
		return Page{}
	}
}
