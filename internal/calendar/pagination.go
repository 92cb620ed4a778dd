package calendar

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items    []T // элементы на текущей странице
	Page     int // номер страницы (с 1)
	PageSize int // количество элементов на странице
	HasNext  bool
	HasPrev  bool
	Total    int // общее количество элементов
}

// NormalizePage приводит номер страницы и её размер к допустимым значениям
// и возвращает limit/offset для запроса в БД.
func NormalizePage(page, pageSize int) (p, size, limit, offset int) {
	const defaultPageSize = 10

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// PageOf собирает страницу из уже выбранных элементов и общего количества.
// items — результат запроса с limit/offset из NormalizePage.
func PageOf[T any](items []T, total, page, pageSize int) Page[T] {
	page, pageSize, _, offset := NormalizePage(page, pageSize)

	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasNext:  offset+len(items) < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}
