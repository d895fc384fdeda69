package notion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/model"
	"leave-calendar-sync/pkg/datemath"
	pkgLog "leave-calendar-sync/pkg/log"
)

// Properties names the database columns a leave record lives in.
type Properties struct {
	Title  string // title-type column
	Person string // rich_text column
	Date   string // date column
	Kind   string // select column
}

// DefaultProperties returns the column names of the team's vacation
// database.
func DefaultProperties() Properties {
	return Properties{
		Title:  "Name",
		Person: "이름",
		Date:   "날짜",
		Kind:   "휴가유형",
	}
}

// withDefaults fills empty names from DefaultProperties.
func (p Properties) withDefaults() Properties {
	d := DefaultProperties()
	if p.Title == "" {
		p.Title = d.Title
	}
	if p.Person == "" {
		p.Person = d.Person
	}
	if p.Date == "" {
		p.Date = d.Date
	}
	if p.Kind == "" {
		p.Kind = d.Kind
	}
	return p
}

const queryPageSize = 100

type implRepository struct {
	client     *Client
	databaseID string
	props      Properties
	l          pkgLog.Logger
}

// New creates a Notion-backed record repository.
func New(client *Client, databaseID string, props Properties, l pkgLog.Logger) repository.RecordRepository {
	return &implRepository{
		client:     client,
		databaseID: databaseID,
		props:      props.withDefaults(),
		l:          l,
	}
}

func (r *implRepository) Find(ctx context.Context, opt repository.FindOptions) ([]model.Record, error) {
	if opt.IsEmpty() {
		return nil, repository.ErrEmptyFind
	}
	return r.queryAll(ctx, r.findFilter(opt), nil)
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Record, error) {
	req := CreatePageRequest{
		Parent: Parent{DatabaseID: r.databaseID},
		Properties: map[string]PropertyValue{
			r.props.Title:  {Title: []RichText{{Text: &TextContent{Content: opt.Title}}}},
			r.props.Person: {RichText: []RichText{{Text: &TextContent{Content: opt.Person}}}},
			r.props.Date:   {Date: &DateValue{Start: model.FormatDate(opt.Date)}},
			r.props.Kind:   {Select: &SelectValue{Name: string(opt.Kind)}},
		},
	}

	page, err := r.client.CreatePage(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "notion repository: failed to create page for %s on %s: %v", opt.Person, model.FormatDate(opt.Date), err)
		return model.Record{}, fmt.Errorf("%w: %w", repository.ErrWrite, err)
	}
	return r.pageToRecord(page), nil
}

func (r *implRepository) Archive(ctx context.Context, id string) error {
	if _, err := r.client.ArchivePage(ctx, id); err != nil {
		r.l.Errorf(ctx, "notion repository: failed to archive page %s: %v", id, err)
		return fmt.Errorf("%w: %w", repository.ErrArchive, err)
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Record, error) {
	filter := Filter{And: []Filter{
		{Property: r.props.Date, Date: &DateCondition{OnOrAfter: model.FormatDate(opt.From)}},
		{Property: r.props.Date, Date: &DateCondition{OnOrBefore: model.FormatDate(opt.To)}},
	}}
	sorts := []Sort{{Property: r.props.Date, Direction: "ascending"}}
	return r.queryAll(ctx, filter, sorts)
}

// findFilter builds the conjunction of equality predicates for opt.
func (r *implRepository) findFilter(opt repository.FindOptions) Filter {
	var and []Filter
	if opt.Person != "" {
		and = append(and, Filter{Property: r.props.Person, RichText: &TextCondition{Equals: opt.Person}})
	}
	if !opt.Date.IsZero() {
		and = append(and, Filter{Property: r.props.Date, Date: &DateCondition{Equals: model.FormatDate(opt.Date)}})
	}
	if opt.Kind != "" {
		and = append(and, Filter{Property: r.props.Kind, Select: &SelectCondition{Equals: string(opt.Kind)}})
	}
	return Filter{And: and}
}

// queryAll follows next_cursor until every match is collected. Archived
// pages never come back from a database query; the check below guards
// against stores that return them anyway.
func (r *implRepository) queryAll(ctx context.Context, filter Filter, sorts []Sort) ([]model.Record, error) {
	var records []model.Record
	req := QueryRequest{Filter: &filter, Sorts: sorts, PageSize: queryPageSize}

	for {
		resp, err := r.client.QueryDatabase(ctx, r.databaseID, req)
		if err != nil {
			r.l.Errorf(ctx, "notion repository: query failed: %v", err)
			return nil, fmt.Errorf("%w: %w", repository.ErrQuery, err)
		}

		for i := range resp.Results {
			if resp.Results[i].Archived {
				continue
			}
			records = append(records, r.pageToRecord(&resp.Results[i]))
		}

		if !resp.HasMore || resp.NextCursor == "" {
			return records, nil
		}
		req.StartCursor = resp.NextCursor
	}
}

// pageToRecord converts a Notion page to the internal model.Record.
func (r *implRepository) pageToRecord(p *Page) model.Record {
	rec := model.Record{
		ID:       p.ID,
		URL:      p.URL,
		Archived: p.Archived,
	}

	if v, ok := p.Properties[r.props.Title]; ok {
		rec.Title = plainText(v.Title)
	}
	if v, ok := p.Properties[r.props.Person]; ok {
		rec.Person = plainText(v.RichText)
	}
	if v, ok := p.Properties[r.props.Date]; ok && v.Date != nil {
		// Date-time values carry a time part; the day is the first 10 chars.
		start := v.Date.Start
		if len(start) > len(datemath.ISOLayout) {
			start = start[:len(datemath.ISOLayout)]
		}
		if d, err := time.Parse(datemath.ISOLayout, start); err == nil {
			rec.Date = d
		}
	}
	// Options added by hand in Notion are not leave kinds this service knows.
	if v, ok := p.Properties[r.props.Kind]; ok && v.Select != nil {
		if kind := model.LeaveKind(v.Select.Name); kind.Valid() {
			rec.Kind = kind
		}
	}
	return rec
}

func plainText(runs []RichText) string {
	var sb strings.Builder
	for _, run := range runs {
		switch {
		case run.PlainText != "":
			sb.WriteString(run.PlainText)
		case run.Text != nil:
			sb.WriteString(run.Text.Content)
		}
	}
	return sb.String()
}
