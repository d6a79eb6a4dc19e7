package components

// Tool is one entry of the home page grid and the site navigation.
type Tool struct {
	Name        string
	Description string
	Path        string
	Icon        string
	Tag         string
	// Accent is the Tailwind gradient stop pair of the card glow.
	Accent string
}

// Tools lists every tool served by the site, in navigation order.
var Tools = []Tool{
	{
		Name:        "ShotCraft",
		Description: "Turn bland screenshots into portfolio pieces. Drop, style, download.",
		Path:        "/shot",
		Icon:        "📸",
		Tag:         "Design",
		Accent:      "from-violet-500 to-purple-600",
	},
	{
		Name:        "InvoiceCraft",
		Description: "Professional invoices in 60 seconds. No account needed, ever.",
		Path:        "/invoice",
		Icon:        "📄",
		Tag:         "Business",
		Accent:      "from-emerald-500 to-teal-600",
	},
	{
		Name:        "PolicyCraft",
		Description: "GDPR-ready privacy policies without the lawyer fees.",
		Path:        "/policy",
		Icon:        "🔒",
		Tag:         "Legal",
		Accent:      "from-amber-500 to-orange-600",
	},
	{
		Name:        "QRCraft",
		Description: "QR codes that don't look like they're from 2010.",
		Path:        "/qr",
		Icon:        "📱",
		Tag:         "Utility",
		Accent:      "from-cyan-500 to-blue-600",
	},
}
