package service

// ListParams поиск и пагинация для списков
type ListParams struct {
	Search string
	Page   int
	Limit  int
}

// Page страница отфильтрованного списка
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

func (s *InventoryStore) normalize(p ListParams) ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = s.pageSize
	}
	return p
}

// paginate режет отфильтрованный список; страница за пределами даёт пустой срез
func paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	out := Page[T]{
		Data:       []T{},
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
	// page > pages также отсекает переполнение (page-1)*limit
	if page > pages {
		return out
	}
	start := (page - 1) * limit
	end := total
	if limit < total-start {
		end = start + limit
	}
	out.Data = items[start:end]
	return out
}
