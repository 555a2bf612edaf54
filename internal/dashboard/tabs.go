package dashboard

// Tab identifies a navigation panel. Any string is accepted; ids outside
// the known set render the placeholder panel.
type Tab string

const (
	TabHome      Tab = "home"
	TabAnalytics Tab = "analytics"
	TabSettings  Tab = "settings"
	TabLogout    Tab = "logout"
)

// TabInfo describes a sidebar entry.
type TabInfo struct {
	ID       Tab
	Label    string
	Subtitle string
}

// Tabs lists the sidebar entries in display order.
var Tabs = []TabInfo{
	{ID: TabHome, Label: "Home", Subtitle: "Monitor your IoT sensors in real-time"},
	{ID: TabAnalytics, Label: "Analytics", Subtitle: "Advanced analytics and insights"},
	{ID: TabSettings, Label: "Settings", Subtitle: "Configure your dashboard settings"},
	{ID: TabLogout, Label: "Logout", Subtitle: "Sign out of your account"},
}

// IndexOf returns the sidebar position of tab, or -1 if it is unknown.
func IndexOf(tab Tab) int {
	for i, info := range Tabs {
		if info.ID == tab {
			return i
		}
	}
	return -1
}

// Lookup returns the TabInfo for tab.
func Lookup(tab Tab) (TabInfo, bool) {
	if i := IndexOf(tab); i >= 0 {
		return Tabs[i], true
	}
	return TabInfo{}, false
}

// Panel is the kind of content rendered for a tab.
type Panel int

const (
	PanelPlaceholder Panel = iota
	PanelSummary
	PanelLogout
)

func (p Panel) String() string {
	switch p {
	case PanelSummary:
		return "summary"
	case PanelLogout:
		return "logout"
	default:
		return "placeholder"
	}
}

// PanelFor maps a tab to the panel it renders.
func PanelFor(tab Tab) Panel {
	switch tab {
	case TabHome:
		return PanelSummary
	case TabLogout:
		return PanelLogout
	default:
		return PanelPlaceholder
	}
}
