package web

import "html/template"

type MenuItem struct {
	Name     string
	URL      string
	Icon     template.HTML // SVG icon as a string
	SubItems []SubMenuItem
}

type SubMenuItem struct {
	Name string
	URL  string
}

var menuItems = []MenuItem{
	{
		Name: "Dashboard",
		URL:  "/admin",
		Icon: template.HTML(DashboardIcon),
	},
	{
		Name: "Reviews",
		URL:  "/admin/reviews",
		Icon: template.HTML(ReviewsIcon),
	},
}
