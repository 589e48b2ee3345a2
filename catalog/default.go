package catalog

import "github.com/ZenXLab/cropxoninnovations-sub001/parameter"

// Default returns the built-in CropXon platform ring
func Default() *Catalog {
	c := &Catalog{Entities: []Entity{
		{ID: "atlas", Name: "ATLAS", Category: "Workforce OS", Color: "#38bdf8",
			Tagline:     "Run the whole workforce from one console",
			Description: "Hiring, payroll, attendance and compliance on a single operating layer."},
		{ID: "traceflow", Name: "TraceFlow", Category: "Digital Intelligence", Color: "#a78bfa",
			Tagline:     "See every journey end to end",
			Description: "Session intelligence and behavior analytics for product teams."},
		{ID: "opzenix", Name: "OpZeniX", Category: "DevOps Automation", Color: "#f472b6",
			Tagline:     "Ship on autopilot",
			Description: "Pipelines, environments and release governance with policy gates."},
		{ID: "cloud", Name: "CropXon Cloud", Category: "Infrastructure", Color: "#60a5fa",
			Tagline:     "Sovereign compute, managed",
			Description: "Regional cloud with managed Kubernetes, storage and networking."},
		{ID: "originx", Name: "OriginX Labs", Category: "Research", Color: "#facc15",
			Tagline:     "Applied research studio",
			Description: "Prototype lab for applied AI, sensing and materials research."},
		{ID: "qualyx", Name: "Qualyx", Category: "Quality Engineering", Color: "#34d399",
			Tagline:     "Test what matters",
			Description: "Autonomous test generation, visual regression and release scoring."},
		{ID: "zenith", Name: "Zenith Studio", Category: "Design Systems", Color: "#fb923c",
			Tagline:     "One design language",
			Description: "Token pipelines and component libraries shared across products."},
		{ID: "huminex", Name: "Huminex", Category: "Human Capital", Color: "#f87171",
			Tagline:     "People analytics",
			Description: "Engagement, skills graph and workforce planning insight."},
		{ID: "robotics", Name: "CropXon Robotics", Category: "Automation Hardware", Color: "#94a3b8",
			Tagline:     "Machines that collaborate",
			Description: "Field robotics and edge controllers for agriculture and logistics."},
		{ID: "cognix", Name: "Cognix", Category: "AI Platform", Color: "#22d3ee",
			Tagline:     "Models to production",
			Description: "Model hosting, evaluation and retrieval pipelines with audit trails."},
		{ID: "sentra", Name: "Sentra", Category: "Security", Color: "#e879f9",
			Tagline:     "Zero trust by default",
			Description: "Identity, posture management and threat detection for the ecosystem."},
		{ID: "ledgerly", Name: "Ledgerly", Category: "Fintech", Color: "#4ade80",
			Tagline:     "Money movement, reconciled",
			Description: "Payments, invoicing and automated reconciliation."},
	}}
	// Built-in data is known valid
	if err := c.Normalize(parameter.DefaultNodeRadius); err != nil {
		panic(err)
	}
	return c
}
