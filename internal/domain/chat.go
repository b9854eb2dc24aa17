package domain

// SearchType - How the assistant should ground its answer
type SearchType string

const (
	// SearchTypeRAG answers from the research knowledge base
	SearchTypeRAG SearchType = "rag"

	// SearchTypeWeb answers with live web search context
	SearchTypeWeb SearchType = "web"
)

// NormalizeSearchType maps the wire value onto a known SearchType.
// Only "web" is significant; every other value (including empty and
// unrecognized ones) behaves as the default knowledge-base mode.
func NormalizeSearchType(value string) SearchType {
	if value == string(SearchTypeWeb) {
		return SearchTypeWeb
	}
	return SearchTypeRAG
}

type (
	// ChatRequest struct - Domain chat request DTO.
	// Captured once at the transport boundary and passed by value to every
	// downstream path, including failure recovery, so the raw body is never
	// consumed twice.
	ChatRequest struct {
		Message    string
		SearchType SearchType
	}

	// StreamChunk struct - One increment of a generated answer.
	// Content carries the next text fragment. Done marks the end of the
	// stream; when Error is non-nil it arrives on the final chunk with
	// Done=true.
	StreamChunk struct {
		Content string
		Done    bool
		Error   error
	}
)
