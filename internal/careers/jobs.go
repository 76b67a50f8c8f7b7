package careers

import "errors"

// Job is one open position on the careers board.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	BusinessUnit string   `json:"business_unit"`
}

var ErrNotFound = errors.New("job not found")

// Catalog is a read-only listing of open positions.
type Catalog struct {
	jobs []Job
}

func NewCatalog() *Catalog {
	return &Catalog{jobs: defaultJobs()}
}

func (c *Catalog) List() []Job {
	out := make([]Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

func (c *Catalog) Get(id string) (Job, error) {
	for _, j := range c.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return Job{}, ErrNotFound
}

func defaultJobs() []Job {
	return []Job{
		{
			ID:          "satellite-operations-engineer",
			Title:       "Satellite Operations Engineer",
			Department:  "Space Services",
			Location:    "Abu Dhabi, UAE",
			Type:        "Full-time",
			Description: "Operate and maintain our growing satellite constellation: mission planning, satellite health monitoring, and coordination with ground stations.",
			Requirements: []string{
				"5+ years of experience in satellite operations",
				"Strong understanding of orbital mechanics",
				"Experience with satellite telemetry systems",
				"Excellent communication skills",
				"Bachelor's degree in Aerospace Engineering or related field",
			},
			BusinessUnit: "Space Services",
		},
		{
			ID:          "geospatial-analyst",
			Title:       "Geospatial Analyst",
			Department:  "Smart Solutions",
			Location:    "Abu Dhabi, UAE",
			Type:        "Full-time",
			Description: "Analyze satellite imagery and geospatial data to deliver actionable insights for government and enterprise clients.",
			Requirements: []string{
				"3+ years of geospatial analysis experience",
				"Proficiency in GIS tools (ArcGIS, QGIS)",
				"Experience with satellite imagery interpretation",
				"Strong analytical and problem-solving skills",
				"Knowledge of remote sensing technologies",
			},
			BusinessUnit: "Smart Solutions",
		},
		{
			ID:          "satcom-systems-specialist",
			Title:       "SatCom Systems Specialist",
			Department:  "Space Services",
			Location:    "Abu Dhabi, UAE",
			Type:        "Full-time",
			Description: "Lead the development and optimization of satellite communication systems built on our Yahsat heritage.",
			Requirements: []string{
				"4+ years in satellite communications",
				"Experience with Ka-band and L-band systems",
				"Understanding of link budget analysis",
				"Strong technical documentation skills",
				"Excellent collaboration abilities",
			},
			BusinessUnit: "Space Services",
		},
		{
			ID:          "ai-ml-engineer-earth-observation",
			Title:       "AI/ML Engineer - Earth Observation",
			Department:  "Smart Solutions",
			Location:    "Abu Dhabi, UAE",
			Type:        "Full-time",
			Description: "Apply machine learning to satellite imagery for automated feature extraction, change detection, and predictive analytics.",
			Requirements: []string{
				"3+ years in machine learning/AI",
				"Experience with computer vision",
				"Python proficiency (TensorFlow, PyTorch)",
				"Knowledge of remote sensing data",
				"Strong problem-solving mindset",
			},
			BusinessUnit: "Smart Solutions",
		},
	}
}
