package search

// Session holds the two copies of filter state behind a search page: the
// applied state driving the visible results and the URL, and the draft being
// edited in the filter dialogs. The only write path into Applied is Apply;
// closing a dialog without applying discards the draft.
type Session struct {
	applied FilterState
	draft   FilterState
}

// Field names a dialog edits. Each multi-select dialog works on exactly one.
type Field string

const (
	FieldMaker   Field = "maker"
	FieldCPU     Field = "cpu"
	FieldGPU     Field = "gpu"
	FieldMemory  Field = "memory"
	FieldStorage Field = "storage"
)

// SeriesState is the aggregate checkbox state of a series heading in a
// hierarchical dialog. It is computed from the draft, never stored.
type SeriesState int

const (
	SeriesUnselected SeriesState = iota
	SeriesIndeterminate
	SeriesSelected
)

// NewSession starts a session with the given applied state; the draft is
// seeded from it, which is what opening any dialog shows.
func NewSession(applied FilterState) *Session {
	return &Session{
		applied: applied.Clone(),
		draft:   applied.Clone(),
	}
}

// Applied returns a copy of the committed state.
func (s *Session) Applied() FilterState { return s.applied.Clone() }

// Draft returns a copy of the in-progress state.
func (s *Session) Draft() FilterState { return s.draft.Clone() }

func (s *Session) draftField(field Field) *[]string {
	switch field {
	case FieldMaker:
		return &s.draft.Maker
	case FieldCPU:
		return &s.draft.CPU
	case FieldGPU:
		return &s.draft.GPU
	case FieldMemory:
		return &s.draft.Memory
	case FieldStorage:
		return &s.draft.Storage
	}
	return nil
}

// ToggleValue adds the value to the draft field if absent, removes it if
// present.
func (s *Session) ToggleValue(field Field, value string) {
	slot := s.draftField(field)
	if slot == nil {
		return
	}
	for i, v := range *slot {
		if v == value {
			*slot = append((*slot)[:i], (*slot)[i+1:]...)
			return
		}
	}
	*slot = append(*slot, value)
}

// SetDraftValues replaces the draft field wholesale.
func (s *Session) SetDraftValues(field Field, values []string) {
	if slot := s.draftField(field); slot != nil {
		*slot = append([]string(nil), values...)
	}
}

// SetDraftPriceRange updates the draft price bounds. An inverted range is
// ignored.
func (s *Session) SetDraftPriceRange(min, max int) {
	if min < 0 || min > max {
		return
	}
	s.draft.PriceMin = min
	s.draft.PriceMax = max
}

// SetDraftKeyword updates the draft search box contents.
func (s *Session) SetDraftKeyword(keyword string) {
	s.draft.SearchKeyword = keyword
}

// ToggleDesktop flips the desktop toggle. The transition that would leave
// both shape toggles off is rejected as a no-op.
func (s *Session) ToggleDesktop() {
	next := !s.draft.ShowDesktop
	if !next && !s.draft.ShowNotebook {
		return
	}
	s.draft.ShowDesktop = next
}

// ToggleNotebook flips the notebook toggle, with the same both-off rejection.
func (s *Session) ToggleNotebook() {
	next := !s.draft.ShowNotebook
	if !next && !s.draft.ShowDesktop {
		return
	}
	s.draft.ShowNotebook = next
}

// SetDraftOnSale updates the sale-only toggle.
func (s *Session) SetDraftOnSale(onSale bool) {
	s.draft.OnSale = onSale
}

// SelectSeries adds every model under the series to the draft field, skipping
// ones already selected.
func (s *Session) SelectSeries(field Field, models []string) {
	slot := s.draftField(field)
	if slot == nil {
		return
	}
	have := make(map[string]bool, len(*slot))
	for _, v := range *slot {
		have[v] = true
	}
	for _, m := range models {
		if !have[m] {
			*slot = append(*slot, m)
		}
	}
}

// ClearSeries removes every model under the series from the draft field.
func (s *Session) ClearSeries(field Field, models []string) {
	slot := s.draftField(field)
	if slot == nil {
		return
	}
	drop := make(map[string]bool, len(models))
	for _, m := range models {
		drop[m] = true
	}
	kept := (*slot)[:0]
	for _, v := range *slot {
		if !drop[v] {
			kept = append(kept, v)
		}
	}
	*slot = kept
}

// SeriesStateOf reports the aggregate checkbox state of a series given its
// member models: selected when every model is in the draft, indeterminate
// when some are, unselected otherwise. An empty series is never selected.
func (s *Session) SeriesStateOf(field Field, models []string) SeriesState {
	slot := s.draftField(field)
	if slot == nil || len(models) == 0 {
		return SeriesUnselected
	}
	have := make(map[string]bool, len(*slot))
	for _, v := range *slot {
		have[v] = true
	}
	count := 0
	for _, m := range models {
		if have[m] {
			count++
		}
	}
	switch {
	case count == 0:
		return SeriesUnselected
	case count == len(models):
		return SeriesSelected
	default:
		return SeriesIndeterminate
	}
}

// Apply commits the draft: it becomes the applied state and the canonical
// query string for page 1 is returned for navigation.
func (s *Session) Apply() string {
	s.applied = s.draft.Clone()
	return Encode(s.applied, 1)
}

// Discard throws the draft away, reseeding it from the applied state. This is
// the cancel/dismiss path of every dialog.
func (s *Session) Discard() {
	s.draft = s.applied.Clone()
}
