//go:generate go run github.com/abice/go-enum@v0.5.6 --marshal

// Package navigation models the tabbed catalog UI as a value: every
// transition returns a new State and leaves the receiver untouched.
package navigation

import "fmt"

// ENUM(home, episodes, save)
type Tab int

// ENUM(tab, character_details, character_episodes)
type Screen int

type Route struct {
	Screen      Screen
	Tab         Tab
	CharacterID int
}

func TabRoute(tab Tab) Route {
	return Route{Screen: ScreenTab, Tab: tab}
}

func (r Route) String() string {
	if r.Screen == ScreenTab {
		return r.Tab.String()
	}
	return fmt.Sprintf("%s/%d", r.Screen, r.CharacterID)
}

type Destination struct {
	Tab   Tab    `json:"tab"`
	Route string `json:"route"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

var Destinations = []Destination{
	{Tab: TabHome, Route: TabRoute(TabHome).String(), Title: "Home", Icon: "home"},
	{Tab: TabEpisodes, Route: TabRoute(TabEpisodes).String(), Title: "Episodes", Icon: "play_circle"},
	{Tab: TabSave, Route: TabRoute(TabSave).String(), Title: "Save", Icon: "bookmark"},
}

type State struct {
	selected Tab
	// Each tab keeps its own stack so that leaving a tab and coming back
	// restores where the user was.
	stacks map[Tab][]Route
}

func NewState() State {
	return State{
		selected: TabHome,
		stacks:   map[Tab][]Route{TabHome: {TabRoute(TabHome)}},
	}
}

func (s State) clone() State {
	stacks := make(map[Tab][]Route, len(s.stacks))
	for tab, stack := range s.stacks {
		stacks[tab] = append([]Route(nil), stack...)
	}
	return State{selected: s.selected, stacks: stacks}
}

func (s State) stack() []Route {
	stack := s.stacks[s.selected]
	if len(stack) == 0 {
		return []Route{TabRoute(s.selected)}
	}
	return stack
}

func (s State) Selected() Tab {
	return s.selected
}

func (s State) Current() Route {
	stack := s.stack()
	return stack[len(stack)-1]
}

// BackStack returns the selected tab's routes, root first.
func (s State) BackStack() []Route {
	return append([]Route(nil), s.stack()...)
}

// Select switches to tab. Reselecting the current tab is a no-op and reports
// false.
func (s State) Select(tab Tab) (State, bool) {
	if !tab.IsValid() || tab == s.selected {
		return s, false
	}
	next := s.clone()
	if len(next.stacks[tab]) == 0 {
		next.stacks[tab] = []Route{TabRoute(tab)}
	}
	next.selected = tab
	return next, true
}

// Open pushes a drill-down route onto the selected tab. Opening the route
// that is already on top does not grow the stack.
func (s State) Open(route Route) State {
	if route.Screen == ScreenTab {
		next, _ := s.Select(route.Tab)
		return next
	}
	if s.Current() == route {
		return s
	}
	next := s.clone()
	next.stacks[next.selected] = append(next.stack(), route)
	return next
}

func (s State) OpenCharacter(id int) State {
	return s.Open(Route{Screen: ScreenCharacterDetails, Tab: s.selected, CharacterID: id})
}

func (s State) OpenCharacterEpisodes(id int) State {
	return s.Open(Route{Screen: ScreenCharacterEpisodes, Tab: s.selected, CharacterID: id})
}

// Back pops the selected tab's stack. From the root of any tab other than
// Home it returns to Home and discards that tab's history; from the root of
// Home there is nowhere to go and it reports false.
func (s State) Back() (State, bool) {
	stack := s.stack()
	if len(stack) > 1 {
		next := s.clone()
		next.stacks[next.selected] = append([]Route(nil), stack[:len(stack)-1]...)
		return next, true
	}
	if s.selected == TabHome {
		return s, false
	}
	next := s.clone()
	delete(next.stacks, next.selected)
	next.selected = TabHome
	if len(next.stacks[TabHome]) == 0 {
		next.stacks[TabHome] = []Route{TabRoute(TabHome)}
	}
	return next, true
}
