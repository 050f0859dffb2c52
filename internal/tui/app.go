// Package tui provides the interactive Bubble Tea dashboard for kburn.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/kburn/internal/diary"
	"github.com/theirongolddev/kburn/internal/model"
	"github.com/theirongolddev/kburn/internal/tui/components"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Diary is the part of the diary service the dashboard reads and writes.
type Diary interface {
	Plan(ctx context.Context) (model.BudgetPlan, error)
	Today(ctx context.Context, now time.Time) (model.DailyIntake, []model.FoodEntry, error)
	Days(ctx context.Context, since, until time.Time) ([]model.DailyIntake, error)
	Entries(ctx context.Context, since, until time.Time) ([]model.FoodEntry, error)
	SaveProfile(ctx context.Context, p model.Profile) error
}

// Options configures a new App.
type Options struct {
	Days            int
	NeedSetup       bool // no profile stored yet; open the profile form first
	AutoRefresh     bool
	RefreshInterval time.Duration
}

// snapshot is everything the tabs render, loaded in one pass.
type snapshot struct {
	plan         model.BudgetPlan
	today        model.DailyIntake
	todayEntries []model.FoodEntry
	week         []model.DailyIntake // last 7 days, most recent first
	days         []model.DailyIntake // the --days window, most recent first
	entries      []model.FoodEntry   // the --days window, oldest first
	summary      model.IntakeSummary
}

// DataLoadedMsg is sent when the initial load finishes.
type DataLoadedMsg struct {
	data     snapshot
	LoadTime time.Duration
	Err      error
}

// RefreshDataMsg is sent when a background refresh completes.
type RefreshDataMsg struct {
	data     snapshot
	LoadTime time.Duration
	Err      error
}

// ProfileSavedMsg is sent after the profile form is persisted.
type ProfileSavedMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	diary Diary
	now   func() time.Time

	// Data
	data     snapshot
	loaded   bool
	loadTime time.Duration
	loadErr  error

	// Auto-refresh state
	autoRefresh     bool
	refreshInterval time.Duration
	lastRefresh     time.Time
	refreshing      bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	days      int
	diaryView diaryState
	notice    string

	// Profile form (first run and the Profile tab's edit action)
	profileForm *huh.Form
	profileVals ProfileValues
	needSetup   bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
	weekDays         = 7
)

// Tab indexes, matching components.Tabs.
const (
	tabToday = iota
	tabWeek
	tabDiary
	tabProfile
)

// NewApp creates a new TUI app model.
func NewApp(d Diary, opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	if opts.Days < 1 {
		opts.Days = 30
	}
	if opts.RefreshInterval < 10*time.Second {
		opts.RefreshInterval = 30 * time.Second
	}

	return App{
		diary:           d,
		now:             time.Now,
		days:            opts.Days,
		needSetup:       opts.NeedSetup,
		autoRefresh:     opts.AutoRefresh,
		refreshInterval: opts.RefreshInterval,
		spinner:         sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.diary, a.days, a.now()),
		a.spinner.Tick,
		tickCmd(),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.profileForm != nil {
			a.profileForm = a.profileForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.profileForm != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabDiary {
				a.diaryView.up()
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabDiary {
				a.diaryView.down(len(a.data.entries))
			}
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// The profile form intercepts all keys while open.
		if a.profileForm != nil {
			return a.updateProfileForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == tabDiary {
			switch key {
			case "j", "down":
				a.diaryView.down(len(a.data.entries))
				return a, nil
			case "k", "up":
				a.diaryView.up()
				return a, nil
			case "g":
				a.diaryView.cursor = 0
				return a, nil
			case "G":
				a.diaryView.cursor = max(len(a.data.entries)-1, 0)
				return a, nil
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			if !a.refreshing {
				a.refreshing = true
				return a, refreshDataCmd(a.diary, a.days, a.now())
			}
			return a, nil
		case "R":
			a.autoRefresh = !a.autoRefresh
			return a, nil
		case "e":
			return a.openProfileForm()
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.lastRefresh = a.now()
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.setData(msg.data)
		}
		if a.needSetup {
			return a.openProfileForm()
		}
		return a, nil

	case RefreshDataMsg:
		a.refreshing = false
		a.lastRefresh = a.now()
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.loadTime = msg.LoadTime
			a.setData(msg.data)
		}
		return a, nil

	case ProfileSavedMsg:
		if msg.Err != nil {
			a.notice = "Profile not saved: " + msg.Err.Error()
			return a, nil
		}
		a.notice = "Profile saved"
		a.refreshing = true
		return a, refreshDataCmd(a.diary, a.days, a.now())

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if a.loaded && a.autoRefresh && !a.refreshing && a.now().Sub(a.lastRefresh) >= a.refreshInterval {
			a.refreshing = true
			cmds = append(cmds, refreshDataCmd(a.diary, a.days, a.now()))
		}
		return a, tea.Batch(cmds...)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.profileForm != nil {
		return a.updateProfileForm(msg)
	}

	return a, nil
}

func (a *App) setData(d snapshot) {
	a.data = d
	a.diaryView.clamp(len(d.entries))
}

func (a App) openProfileForm() (tea.Model, tea.Cmd) {
	p := a.data.plan.Profile
	if p.Gender == "" {
		p = model.DefaultProfile()
	}
	a.profileVals = ProfileValuesFrom(p)
	a.profileForm = NewProfileForm(&a.profileVals)
	if a.width > 0 {
		a.profileForm = a.profileForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.profileForm.Init()
}

func (a App) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.profileForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.profileForm = f
	}

	switch a.profileForm.State {
	case huh.StateCompleted:
		a.needSetup = false
		a.profileForm = nil
		return a, saveProfileCmd(a.diary, a.profileVals)
	case huh.StateAborted:
		a.needSetup = false
		a.profileForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.profileForm != nil {
		return a.profileForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  kburn needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ kburn"))
	b.WriteString(subtitleStyle.Render(" · Calorie Budget"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Reading diary..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Key).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"t w d p", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k g G", "Move through diary entries"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"e", "Edit profile"},
			{"r", "Refresh data"},
			{"R", "Toggle auto-refresh"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)

	dataAge := ""
	if !a.lastRefresh.IsZero() {
		dataAge = "updated " + a.lastRefresh.Format("15:04:05")
	}
	statusBar := components.RenderStatusBar(w, dataAge, a.data.today.Calories, a.data.today.Budget, a.refreshing, a.autoRefresh)

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.loadErr != nil:
		content = components.ContentCard("Error", a.loadErr.Error(), cw)
	case a.activeTab == tabToday:
		content = a.renderTodayTab(cw)
	case a.activeTab == tabWeek:
		content = a.renderWeekTab(cw)
	case a.activeTab == tabDiary:
		content = a.renderDiaryTab(cw, contentH)
	case a.activeTab == tabProfile:
		content = a.renderProfileTab(cw)
	}
	if a.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background)
		content = noticeStyle.Render(" "+a.notice) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Data loading ───────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// loadSnapshot reads everything the dashboard shows for the window ending at now.
func loadSnapshot(ctx context.Context, d Diary, days int, now time.Time) (snapshot, error) {
	var s snapshot
	var err error

	if s.plan, err = d.Plan(ctx); err != nil {
		return s, fmt.Errorf("loading profile: %w", err)
	}
	if s.today, s.todayEntries, err = d.Today(ctx, now); err != nil {
		return s, fmt.Errorf("loading today: %w", err)
	}

	since := now.AddDate(0, 0, -(days - 1))
	if s.days, err = d.Days(ctx, since, now); err != nil {
		return s, fmt.Errorf("loading days: %w", err)
	}
	if s.entries, err = d.Entries(ctx, since, now); err != nil {
		return s, fmt.Errorf("loading entries: %w", err)
	}
	if s.week, err = d.Days(ctx, now.AddDate(0, 0, -(weekDays-1)), now); err != nil {
		return s, fmt.Errorf("loading week: %w", err)
	}
	s.summary = diary.Summarize(s.days)
	return s, nil
}

func loadDataCmd(d Diary, days int, now time.Time) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		data, err := loadSnapshot(ctx, d, days, now)
		return DataLoadedMsg{data: data, LoadTime: time.Since(start), Err: err}
	}
}

// refreshDataCmd reloads in the background without the loading screen.
func refreshDataCmd(d Diary, days int, now time.Time) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		data, err := loadSnapshot(ctx, d, days, now)
		return RefreshDataMsg{data: data, LoadTime: time.Since(start), Err: err}
	}
}

func saveProfileCmd(d Diary, vals ProfileValues) tea.Cmd {
	return func() tea.Msg {
		p, err := vals.Profile()
		if err != nil {
			return ProfileSavedMsg{Err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return ProfileSavedMsg{Err: d.SaveProfile(ctx, p)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// chartDateLabels builds X-axis labels for a chronological date series.
// days is sorted newest-first; labels are returned oldest-left.
// Windows of a week or less use weekday names, longer ones use day numbers
// with the month name at the start and at month boundaries.
func chartDateLabels(days []model.DailyIntake) []string {
	n := len(days)
	labels := make([]string, n)
	prevMonth := time.Month(0)
	for i := range days {
		dt := days[n-1-i].Date
		switch {
		case n <= weekDays:
			labels[i] = dt.Format("Mon")
		case i == 0 || dt.Month() != prevMonth:
			labels[i] = dt.Format("Jan")
		default:
			labels[i] = strconv.Itoa(dt.Day())
		}
		prevMonth = dt.Month()
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same width rules as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
