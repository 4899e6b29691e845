package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
)

// FormatCatalog renders the textbook catalog as a subject → level → book
// tree with nominal hours as badges.
func FormatCatalog(catalog []app.SubjectCatalog) string {
	if len(catalog) == 0 {
		return Dim("The catalog is empty.") + "\n"
	}
	var items []TreeItem
	for _, sc := range catalog {
		items = append(items, TreeItem{Title: sc.Subject})
		for li, lg := range sc.Levels {
			items = append(items, TreeItem{
				Title:  StylePurple.Render(string(lg.Level)),
				Level:  1,
				IsLast: li == len(sc.Levels)-1,
			})
			for bi, book := range lg.Books {
				detail := "--"
				if book.Duration != nil {
					detail = FormatHours(*book.Duration)
				}
				items = append(items, TreeItem{
					Title:  fmt.Sprintf("%s %s", Dim(fmt.Sprintf("#%d", book.ID)), book.Name),
					Level:  2,
					IsLast: bi == len(lg.Books)-1,
					Detail: detail,
				})
			}
		}
	}
	return RenderTree(items)
}

// FormatTextbookList renders a flat catalog listing.
func FormatTextbookList(books []*domain.MasterTextbook) string {
	if len(books) == 0 {
		return Dim("No textbooks found.") + "\n"
	}
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", b.ID)),
			b.Subject,
			string(b.Level),
			Bold(b.Name),
			FormatOptionalHours(b.Duration),
		})
	}
	return RenderTable([]string{"ID", "SUBJECT", "LEVEL", "NAME", "HOURS"}, rows)
}

// FormatStatistics renders how many students completed material at each
// level, one row per subject.
func FormatStatistics(resp *app.StatisticsResponse) string {
	if len(resp.Subjects) == 0 {
		return Dim("No subjects in the catalog.") + "\n"
	}
	headers := []string{"SUBJECT"}
	for _, l := range resp.Levels {
		headers = append(headers, strings.ToUpper(string(l)))
	}
	rows := make([][]string, 0, len(resp.Subjects))
	for _, s := range resp.Subjects {
		row := []string{Bold(s.Subject)}
		for _, l := range resp.Levels {
			n := s.Counts[l]
			cell := strconv.Itoa(n)
			if n == 0 {
				cell = Dim(cell)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return Header("Students completing each level") + "\n" + RenderTable(headers, rows)
}
