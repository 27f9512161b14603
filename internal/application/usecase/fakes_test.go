package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

var errBoom = errors.New("boom")

// fakeController is an in-memory controller that records every call and the
// ordering of concurrent assignments.
type fakeController struct {
	mu sync.Mutex

	sites      map[string]entity.Site
	groups     map[string][]entity.DeviceGroup
	groupErr   map[string]error
	profiles   map[string][]entity.Profile
	profileErr map[string]error
	assignErr  map[string]error
	syncErr    map[string]error

	createErr    error
	batchSyncErr error
	assignDelay  time.Duration

	created     []entity.ServiceSpec
	assigned    []string
	batchSynced [][]string
	synced      []string
	siteLookups int

	seq         atomic.Int64
	inFlight    atomic.Int64
	maxInFlight atomic.Int64
	spans       map[string][2]int64
}

func newFakeController() *fakeController {
	return &fakeController{
		sites:      map[string]entity.Site{},
		groups:     map[string][]entity.DeviceGroup{},
		groupErr:   map[string]error{},
		profiles:   map[string][]entity.Profile{},
		profileErr: map[string]error{},
		assignErr:  map[string]error{},
		syncErr:    map[string]error{},
		spans:      map[string][2]int64{},
	}
}

func (f *fakeController) withSite(siteID, name string) *fakeController {
	f.sites[siteID] = entity.Site{ID: siteID, Name: name}
	return f
}

// withGroup adds a device group holding profileIDs to siteID.
func (f *fakeController) withGroup(siteID, groupID string, profileIDs ...string) *fakeController {
	f.groups[siteID] = append(f.groups[siteID], entity.DeviceGroup{ID: groupID, SiteID: siteID, ProfileIDs: profileIDs})
	for _, id := range profileIDs {
		f.profiles[groupID] = append(f.profiles[groupID], entity.Profile{ID: id, Name: "name-" + id})
	}
	return f
}

func (f *fakeController) CreateService(_ context.Context, spec entity.ServiceSpec) (entity.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, spec)
	if f.createErr != nil {
		return entity.Service{}, f.createErr
	}
	return entity.Service{ID: "svc-1", Name: spec.Name, SSID: spec.SSID}, nil
}

func (f *fakeController) GetSites(_ context.Context) ([]entity.Site, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Site, 0, len(f.sites))
	for _, s := range f.sites {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeController) GetSiteByID(_ context.Context, siteID string) (entity.Site, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.siteLookups++
	s, ok := f.sites[siteID]
	if !ok {
		return entity.Site{}, fmt.Errorf("site %s not found", siteID)
	}
	return s, nil
}

func (f *fakeController) GetDeviceGroupsBySite(_ context.Context, siteID string) ([]entity.DeviceGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.groupErr[siteID]; err != nil {
		return nil, err
	}
	return f.groups[siteID], nil
}

func (f *fakeController) GetProfilesByDeviceGroup(_ context.Context, deviceGroupID string) ([]entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.profileErr[deviceGroupID]; err != nil {
		return nil, err
	}
	return append([]entity.Profile(nil), f.profiles[deviceGroupID]...), nil
}

func (f *fakeController) AssignServiceToProfile(ctx context.Context, _ string, profileID string) error {
	start := f.seq.Add(1)
	n := f.inFlight.Add(1)
	for {
		m := f.maxInFlight.Load()
		if n <= m || f.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}

	if f.assignDelay > 0 {
		select {
		case <-time.After(f.assignDelay):
		case <-ctx.Done():
		}
	}

	f.inFlight.Add(-1)
	end := f.seq.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.spans[profileID] = [2]int64{start, end}
	if err := f.assignErr[profileID]; err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.assigned = append(f.assigned, profileID)
	return nil
}

func (f *fakeController) SyncMultipleProfiles(_ context.Context, profileIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchSynced = append(f.batchSynced, append([]string(nil), profileIDs...))
	return f.batchSyncErr
}

func (f *fakeController) SyncProfile(_ context.Context, profileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.synced = append(f.synced, profileID)
	return f.syncErr[profileID]
}

func (f *fakeController) assignedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.assigned...)
}

// fakeHistory keeps saved runs in memory.
type fakeHistory struct {
	mu      sync.Mutex
	runs    []entity.RunRecord
	saveErr error
}

func (h *fakeHistory) SaveRun(record entity.RunRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.saveErr != nil {
		return h.saveErr
	}
	h.runs = append(h.runs, record)
	return nil
}

func (h *fakeHistory) ListRuns(limit int) ([]entity.RunRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if limit <= 0 || limit > len(h.runs) {
		limit = len(h.runs)
	}
	return append([]entity.RunRecord(nil), h.runs[:limit]...), nil
}

func (h *fakeHistory) GetRun(runID string) (entity.RunRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.runs {
		if r.RunID == runID {
			return r, nil
		}
	}
	return entity.RunRecord{}, errors.New("not found")
}

func (h *fakeHistory) Close() error { return nil }

// quietConsole satisfies types.ConsoleInterface and only remembers warnings.
type quietConsole struct {
	mu       sync.Mutex
	warnings []string
	summary  *types.AssignmentSummary
}

func (c *quietConsole) Print(...interface{})                       {}
func (c *quietConsole) Printf(string, ...interface{})              {}
func (c *quietConsole) Println(...interface{})                     {}
func (c *quietConsole) LogInfo(string, ...interface{})             {}
func (c *quietConsole) LogError(string, ...interface{})            {}
func (c *quietConsole) LogSuccess(string, ...interface{})          {}
func (c *quietConsole) Status(string) types.StatusHandle           { return noopHandle{} }
func (c *quietConsole) ProgressWithTotal(int) types.ProgressHandle { return noopHandle{} }
func (c *quietConsole) CreateTable() types.TableInterface          { return &noopTable{} }

func (c *quietConsole) LogWarning(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *quietConsole) DisplayAssignmentSummary(summary types.AssignmentSummary) {
	c.summary = &summary
}

type noopHandle struct{}

func (noopHandle) Update(string) {}
func (noopHandle) Increment()    {}
func (noopHandle) Stop()         {}

type noopTable struct{ rows int }

func (t *noopTable) AddColumn(string, ...interface{}) {}
func (t *noopTable) AddRow(...interface{})            { t.rows++ }
func (t *noopTable) Render() string                   { return "" }

func profilesOf(ids ...string) []entity.Profile {
	out := make([]entity.Profile, len(ids))
	for i, id := range ids {
		out[i] = entity.Profile{ID: id, Name: "name-" + id}
	}
	return out
}

func validSpec(sites ...string) entity.ServiceSpec {
	return entity.ServiceSpec{
		Name:       "Corp WiFi",
		SSID:       "corp",
		Security:   entity.SecurityWPA2Personal,
		Passphrase: "supersecret",
		Band:       entity.BandDual,
		Enabled:    true,
		Sites:      sites,
	}
}
