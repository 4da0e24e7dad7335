// ABOUTME: Pagination utilities for articles
// ABOUTME: Slices a page out of a merged article list for API responses

package feed

import "newsbrief-api/core/domain"

// DefaultPerPage is used when the caller asks for a non-positive page size
const DefaultPerPage = 20

// PaginateArticles returns a paginated slice of articles
func PaginateArticles(articles []domain.Article, page, perPage int) []domain.Article {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = DefaultPerPage
	}

	start := (page - 1) * perPage
	if start >= len(articles) {
		return []domain.Article{}
	}

	end := start + perPage
	if end > len(articles) {
		end = len(articles)
	}

	return articles[start:end]
}
