package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
)

// fakeLibrary is an in-memory driven.Library for service tests. Documents
// are registered by path; Create returns a recording composite.
type fakeLibrary struct {
	mu        sync.Mutex
	docs      map[string]*fakeDocument
	openErrs  map[string]error
	openCalls []string
	created   []*fakeDocument
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		docs:     make(map[string]*fakeDocument),
		openErrs: make(map[string]error),
	}
}

// addDoc registers a readable document under path with one entry per page
// text.
func (l *fakeLibrary) addDoc(path, title string, pageTexts ...string) *fakeDocument {
	doc := &fakeDocument{title: title, pageTextErrs: make(map[int]error)}
	for _, text := range pageTexts {
		doc.pages = append(doc.pages, &fakePage{text: text})
	}
	l.docs[path] = doc
	return doc
}

func (l *fakeLibrary) Open(path string) (driven.Document, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.openCalls = append(l.openCalls, path)

	if err := l.openErrs[path]; err != nil {
		return nil, err
	}
	doc, ok := l.docs[path]
	if !ok {
		return nil, fmt.Errorf("no such document: %s", path)
	}
	return doc, nil
}

func (l *fakeLibrary) Create() driven.Document {
	l.mu.Lock()
	defer l.mu.Unlock()
	doc := &fakeDocument{pageTextErrs: make(map[int]error)}
	l.created = append(l.created, doc)
	return doc
}

// lastComposite returns the most recently created composite.
func (l *fakeLibrary) lastComposite() *fakeDocument {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.created) == 0 {
		return nil
	}
	return l.created[len(l.created)-1]
}

// fakeText is one recorded InsertText call.
type fakeText struct {
	At       driven.Point
	Text     string
	FontSize float64
}

// fakeLink is one recorded InsertLink call.
type fakeLink struct {
	Region driven.Rect
	Target driven.LinkTarget
}

// fakePage is one page of a fake document, carrying its stamped texts and
// links so index shifts move them with the page.
type fakePage struct {
	text  string
	texts []fakeText
	links []fakeLink
}

// fakeDocument implements driven.Document in memory.
type fakeDocument struct {
	title        string
	pages        []*fakePage
	pageTextErrs map[int]error
	outline      []domain.OutlineEntry
	savedTo      []string
	closeCount   int
	saveErr      error
}

func (d *fakeDocument) PageCount() int        { return len(d.pages) }
func (d *fakeDocument) MetadataTitle() string { return d.title }

func (d *fakeDocument) PageText(pageIndex int) (string, error) {
	if err := d.pageTextErrs[pageIndex]; err != nil {
		return "", err
	}
	return d.pages[pageIndex].text, nil
}

func (d *fakeDocument) CopyPageInto(dst driven.Document, pageIndex int) error {
	target := dst.(*fakeDocument)
	src := d.pages[pageIndex]
	target.pages = append(target.pages, &fakePage{text: src.text})
	return nil
}

func (d *fakeDocument) InsertBlankPage(pageIndex int) error {
	pages := make([]*fakePage, 0, len(d.pages)+1)
	pages = append(pages, d.pages[:pageIndex]...)
	pages = append(pages, &fakePage{})
	pages = append(pages, d.pages[pageIndex:]...)
	d.pages = pages
	return nil
}

func (d *fakeDocument) InsertText(pageIndex int, at driven.Point, text string, fontSize float64) error {
	d.pages[pageIndex].texts = append(d.pages[pageIndex].texts, fakeText{At: at, Text: text, FontSize: fontSize})
	return nil
}

func (d *fakeDocument) InsertLink(pageIndex int, region driven.Rect, target driven.LinkTarget) error {
	d.pages[pageIndex].links = append(d.pages[pageIndex].links, fakeLink{Region: region, Target: target})
	return nil
}

func (d *fakeDocument) SetOutline(entries []domain.OutlineEntry) error {
	d.outline = entries
	return nil
}

func (d *fakeDocument) Save(path string) error {
	if d.saveErr != nil {
		return d.saveErr
	}
	d.savedTo = append(d.savedTo, path)
	return nil
}

func (d *fakeDocument) Close() error {
	d.closeCount++
	return nil
}

// fakeHistoryStore records runs in memory.
type fakeHistoryStore struct {
	mu        sync.Mutex
	runs      []domain.SearchRun
	recordErr error
}

func (s *fakeHistoryStore) Record(_ context.Context, run domain.SearchRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recordErr != nil {
		return s.recordErr
	}
	s.runs = append(s.runs, run)
	return nil
}

func (s *fakeHistoryStore) List(_ context.Context, limit int) ([]domain.SearchRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	runs := make([]domain.SearchRun, 0, limit)
	for i := len(s.runs) - 1; i >= 0 && len(runs) < limit; i-- {
		runs = append(runs, s.runs[i])
	}
	return runs, nil
}

func (s *fakeHistoryStore) Close() error { return nil }
