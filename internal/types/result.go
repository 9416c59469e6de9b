package types

type (
	// PackageResult reports the pages generated for one package.
	PackageResult struct {
		Name  string   `json:"name"`
		Pages []string `json:"pages"` // doc paths in generation order
	}

	// GenerateResult reports one full generation run.
	GenerateResult struct {
		Packages    []PackageResult `json:"packages"`
		SummaryPath string          `json:"summaryPath"`
		TotalPages  int             `json:"totalPages"`
		DryRun      bool            `json:"dryRun,omitempty"`
	}
)
