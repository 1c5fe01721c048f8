package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/swapplan/internal/catalog"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/template"
	"github.com/alexanderramin/swapplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_DefaultCatalog(t *testing.T) {
	tc := testutil.NewTestCatalog(t)
	ctx := context.Background()

	base, err := tc.Stores.Templates.GetBaseline(ctx)
	require.NoError(t, err)
	assert.Equal(t, "general", base.Key)
	assert.Equal(t, "General Swap", base.Name)

	chassis, err := tc.Stores.Chassis.List(ctx)
	require.NoError(t, err)
	require.Len(t, chassis, 20)
	assert.Equal(t, "2003–2009 4Runner (N210)", chassis[0].Name)
	assert.True(t, chassis[0].HasOverride())
	assert.False(t, chassis[1].HasOverride())

	engines, err := tc.Stores.Engines.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4.8 LS (LR4)", engines[0].Name)
	assert.Equal(t, "Ford Coyote 5.0", engines[len(engines)-1].Name)

	presets, err := tc.Stores.Presets.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, presets, 4)
	assert.Equal(t, 1, presets[0].Seq)
	assert.Equal(t, domain.UseTrack, presets[3].Use)
}

func TestSeed_ReplacesExistingContents(t *testing.T) {
	tc := testutil.NewTestCatalog(t)
	ctx := context.Background()

	doc, err := catalog.LoadDefault()
	require.NoError(t, err)
	doc.Engines = doc.Engines[:2]
	require.NoError(t, catalog.Seed(ctx, testutil.NewTestUoW(tc.DB), doc))

	engines, err := tc.Stores.Engines.List(ctx)
	require.NoError(t, err)
	assert.Len(t, engines, 2)

	chassis, err := tc.Stores.Chassis.List(ctx)
	require.NoError(t, err)
	assert.Len(t, chassis, 20)
}

func TestSeed_InvalidDocumentWritesNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	doc, err := catalog.Parse(strings.NewReader("engines:\n  - name: K24\n"))
	require.NoError(t, err)

	err = catalog.Seed(ctx, testutil.NewTestUoW(database), doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")

	engines, err := catalog.NewStores(database).Engines.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, engines)
}

func TestSeed_RollsBackOnWriteFailure(t *testing.T) {
	tc := testutil.NewTestCatalog(t)
	ctx := context.Background()

	doc, err := catalog.LoadDefault()
	require.NoError(t, err)

	injected := errors.New("disk full")
	// Six deletes clear the tables; the seventh exec is the first insert.
	uow := &testutil.FailOnNthExecUoW{DB: tc.DB, FailOn: 7, Err: injected}
	err = catalog.Seed(ctx, uow, doc)
	require.ErrorIs(t, err, injected)

	chassis, err := tc.Stores.Chassis.List(ctx)
	require.NoError(t, err)
	assert.Len(t, chassis, 20, "previous contents survive a failed reseed")
}

func TestBuildRegistry_Lookups(t *testing.T) {
	reg := testutil.NewTestCatalog(t).Registry

	c, ok := reg.Chassis("  2003–2009 4runner   (n210) ")
	require.True(t, ok)
	assert.Equal(t, "2003–2009 4Runner (N210)", c.Name)

	e, ok := reg.Engine("honda k24")
	require.True(t, ok)
	assert.Equal(t, "K-series ECU/standalone", e.ECU)

	tr, ok := reg.Transmission("Keep Current")
	require.True(t, ok)
	assert.Equal(t, []string{"Confirm compatibility/adapters based on chassis."}, tr.Notes)

	_, ok = reg.Chassis("DeLorean")
	assert.False(t, ok)
	_, ok = reg.Engine("13B")
	assert.False(t, ok)
	_, ok = reg.Transmission("CVT")
	assert.False(t, ok)
}

func TestBuildRegistry_AliasesShareChassisAndOverride(t *testing.T) {
	reg := testutil.NewTestCatalog(t).Registry

	canonical, ok := reg.Chassis("2003–2009 4Runner (N210)")
	require.True(t, ok)
	alias, ok := reg.Chassis("2004–2009 Toyota 4Runner (N210)")
	require.True(t, ok)

	assert.Equal(t, canonical.ID, alias.ID)
	assert.Equal(t, canonical.Defaults, alias.Defaults)
	assert.Equal(t, reg.Override(canonical), reg.Override(alias))
	assert.NotNil(t, reg.Override(alias))

	gmt, ok := reg.Chassis("1999–2006 Chevy/GMC Truck (GMT800)")
	require.True(t, ok)
	assert.Equal(t, "2000–2006 Tahoe/Silverado (GMT800)", gmt.Name)
	assert.Nil(t, reg.Override(gmt))
}

func TestBuildRegistry_BaselineIsACopy(t *testing.T) {
	reg := testutil.NewTestCatalog(t).Registry

	first := reg.Baseline()
	first["hours"].(map[string]any)["planning"] = 100
	delete(first, "phases")

	second := reg.Baseline()
	assert.Equal(t, 6, second["hours"].(map[string]any)["planning"])
	assert.Contains(t, second, "phases")

	tmpl, err := template.Decode(second)
	require.NoError(t, err)
	assert.Equal(t, 56.0, tmpl.TotalHours())
}

func TestBuildRegistry_LookupsReturnCopies(t *testing.T) {
	reg := testutil.NewTestCatalog(t).Registry

	c, ok := reg.Chassis("2003–2009 4Runner (N210)")
	require.True(t, ok)
	c.Aliases[0] = "changed"
	c.Notes[0] = "changed"
	c.Defaults.Mounts = "changed"

	again, ok := reg.Chassis("2004–2009 Toyota 4Runner (N210)")
	require.True(t, ok)
	assert.Equal(t, []string{"2004–2009 Toyota 4Runner (N210)"}, again.Aliases)
	assert.Equal(t, "Steering rack + crossmember clearance is the #1 limiter.", again.Notes[0])
	assert.Equal(t, "N210 swap motor mounts + clamshells (match chassis)", again.Defaults.Mounts)

	small, err := catalog.NewRegistry(reg.Baseline(), nil,
		[]*domain.Engine{testutil.NewTestEngine("Honda K24", testutil.WithEngineNotes("Needs a K-swap ECU."))},
		[]*domain.Transmission{testutil.NewTestTransmission("4L60E", "Electronic 4-speed.")},
	)
	require.NoError(t, err)

	e, ok := small.Engine("Honda K24")
	require.True(t, ok)
	e.Notes[0] = "changed"
	e, _ = small.Engine("honda k24")
	assert.Equal(t, []string{"Needs a K-swap ECU."}, e.Notes)

	tr, ok := small.Transmission("4L60E")
	require.True(t, ok)
	tr.Notes[0] = "changed"
	tr, _ = small.Transmission("4l60e")
	assert.Equal(t, []string{"Electronic 4-speed."}, tr.Notes)
}

func TestBuildRegistry_N210Scenario(t *testing.T) {
	reg := testutil.NewTestCatalog(t).Registry

	c, ok := reg.Chassis("2003–2009 4Runner (N210)")
	require.True(t, ok)

	tmpl, err := template.ResolveTemplate(reg.Baseline(), reg.Override(c))
	require.NoError(t, err)
	assert.Equal(t, 62.0, tmpl.TotalHours())
	assert.Len(t, tmpl.Warnings, 2)

	mounts := tmpl.SubsystemChecks["Mounts & Fitment"]
	require.Len(t, mounts, 5)
	assert.Equal(t, "Verify front driveshaft clearance at full droop (4WD).", mounts[4])
}

func TestBuildRegistry_MissingBaseline(t *testing.T) {
	database := testutil.NewTestDB(t)

	_, err := catalog.BuildRegistry(context.Background(), catalog.NewStores(database))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading baseline template")
}
