package app

import (
	"fmt"
	"os"

	"github.com/hmorganics/dairybill/internal/assets"
	"github.com/hmorganics/dairybill/internal/config"
	"github.com/hmorganics/dairybill/internal/domain"
	"github.com/hmorganics/dairybill/internal/service"
)

// App is the dependency injection container for all application components
type App struct {
	Config  *config.Config
	Session service.InvoiceSession
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Creating output directories
// 3. Loading the company logo (optional)
// 4. Starting the invoice session
func New() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	company := domain.CompanyInfo{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Tagline: cfg.Company.Tagline,
		GSTIN:   cfg.Company.GSTIN,
	}

	// A missing or unreadable logo never blocks invoicing; the documents
	// render without it.
	if cfg.Company.LogoPath != "" {
		logo, err := assets.LoadLogo(cfg.Company.LogoPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: logo not loaded: %v\n", err)
		} else {
			company.LogoDataURI = logo
		}
	}

	session := service.NewInvoiceSession(company, cfg.Invoice.NumberPrefix, cfg.Invoice.OutputDir)

	return &App{
		Config:  cfg,
		Session: session,
	}, nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

// ApplySettings pushes edited settings into the live session so the next
// export reflects them without a restart.
func (a *App) ApplySettings() {
	inv := a.Session.Invoice()
	inv.Company.Name = a.Config.Company.Name
	inv.Company.Address = a.Config.Company.Address
	inv.Company.Tagline = a.Config.Company.Tagline
	a.Session.SetCompanyGSTIN(a.Config.Company.GSTIN)
	a.Session.SetOutputDir(a.Config.Invoice.OutputDir)

	if a.Config.Company.LogoPath == "" {
		a.Session.SetCompanyLogo("")
		return
	}
	if logo, err := assets.LoadLogo(a.Config.Company.LogoPath); err == nil {
		a.Session.SetCompanyLogo(logo)
	}
}
