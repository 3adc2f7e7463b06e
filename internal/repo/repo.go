package repo

import (
	"github.com/GlebRadaev/panelmart/internal/pg"
	intentrepo "github.com/GlebRadaev/panelmart/internal/repo/intent-repo"
	ledgerrepo "github.com/GlebRadaev/panelmart/internal/repo/ledger-repo"
	mirrorrepo "github.com/GlebRadaev/panelmart/internal/repo/mirror-repo"
	panelrepo "github.com/GlebRadaev/panelmart/internal/repo/panel-repo"
	pricingrepo "github.com/GlebRadaev/panelmart/internal/repo/pricing-repo"
	receiptrepo "github.com/GlebRadaev/panelmart/internal/repo/receipt-repo"
	resellerrepo "github.com/GlebRadaev/panelmart/internal/repo/reseller-repo"
)

type Repositories struct {
	Reseller *resellerrepo.Repository
	Panel    *panelrepo.Repository
	Pricing  *pricingrepo.Repository
	Ledger   *ledgerrepo.Repository
	Mirror   *mirrorrepo.Repository
	Receipt  *receiptrepo.Repository
	Intent   *intentrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Reseller: resellerrepo.New(conn),
		Panel:    panelrepo.New(conn),
		Pricing:  pricingrepo.New(conn),
		Ledger:   ledgerrepo.New(conn),
		Mirror:   mirrorrepo.New(conn),
		Receipt:  receiptrepo.New(conn),
		Intent:   intentrepo.New(conn),
	}
}
