// Package seeder generates synthetic security events for demos and load checks.
package seeder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

// Kind names one of the generated event shapes.
type Kind string

const (
	KindAuthFailure  Kind = "auth_failure"
	KindPortScan     Kind = "port_scan"
	KindMalware      Kind = "malware"
	KindConfigChange Kind = "config_change"
)

// Kinds lists every kind in the order Next cycles through them.
var Kinds = []Kind{KindAuthFailure, KindPortScan, KindMalware, KindConfigChange}

var scanPorts = []int{21, 22, 23, 25, 80, 110, 143, 443, 445, 3306, 3389, 5432, 8080}

// Seeder is not safe for concurrent use.
type Seeder struct {
	device cef.Device
	faker  *gofakeit.Faker
	n      int
}

// New returns a Seeder that stamps every event with device. The same
// non-zero seed always yields the same sequence; 0 seeds from crypto/rand.
func New(device cef.Device, seed int64) *Seeder {
	return &Seeder{device: device, faker: gofakeit.New(seed)}
}

// Next returns the next event. Kinds rotate so short runs still cover each one.
func (s *Seeder) Next() (*cef.Event, error) {
	kind := Kinds[s.n%len(Kinds)]
	s.n++
	return s.Generate(kind)
}

// Generate returns one event of the given kind.
func (s *Seeder) Generate(kind Kind) (*cef.Event, error) {
	var cfg cef.Config
	b := cef.NewExtensionBuilder()

	switch kind {
	case KindAuthFailure:
		s.authFailure(&cfg, b)
	case KindPortScan:
		s.portScan(&cfg, b)
	case KindMalware:
		s.malware(&cfg, b)
	case KindConfigChange:
		s.configChange(&cfg, b)
	default:
		return nil, fmt.Errorf("seeder: unknown kind %q", kind)
	}

	id, err := uuid.NewRandomFromReader(s.faker.Rand)
	if err != nil {
		return nil, fmt.Errorf("seeder: external id: %w", err)
	}
	b.Add("externalId", id.String())

	cfg.Device = &s.device
	cfg.Extension = b.Build()
	return cef.New(cfg)
}

func (s *Seeder) authFailure(cfg *cef.Config, b *cef.ExtensionBuilder) {
	f := s.faker
	user := f.Username()
	reason := f.RandomString([]string{"Invalid credentials", "Account locked", "Expired password"})

	cfg.ID = "4625"
	cfg.Name = "An account failed to log on"
	cfg.Severity = f.IntRange(4, 6)

	b.Add("src", f.IPv4Address()).
		Add("spt", strconv.Itoa(f.IntRange(1024, 65535))).
		Add("suser", user).
		Add("msg", fmt.Sprintf("Logon failure for %s\r\nReason: %s\r\nDomain: CORP\\%s", user, reason, user))
}

func (s *Seeder) portScan(cfg *cef.Config, b *cef.ExtensionBuilder) {
	f := s.faker
	probed := f.IntRange(3, len(scanPorts))
	ports := make([]string, 0, probed)
	for _, p := range scanPorts[:probed] {
		ports = append(ports, strconv.Itoa(p))
	}

	cfg.ID = "port_scan"
	cfg.Name = "Port scan detected"
	cfg.Severity = f.IntRange(6, 8)

	b.Add("src", f.IPv4Address()).
		Add("dst", f.IPv4Address()).
		Add("dpt", ports[len(ports)-1]).
		Add("msg", fmt.Sprintf("ports=%s rate=%d/s", strings.Join(ports, ","), f.IntRange(50, 5000)))
}

func (s *Seeder) malware(cfg *cef.Config, b *cef.ExtensionBuilder) {
	f := s.faker
	user := f.Username()
	file := f.Word() + ".exe"

	cfg.ID = "malware_detected"
	cfg.Name = "Malware detected | quarantined"
	cfg.Severity = f.IntRange(8, 10)

	b.Add("dst", f.IPv4Address()).
		Add("suser", user).
		Add("msg", fmt.Sprintf(`C:\Users\%s\Downloads\%s matched signature=%s`, user, file, f.HackerAbbreviation()))
}

func (s *Seeder) configChange(cfg *cef.Config, b *cef.ExtensionBuilder) {
	f := s.faker
	user := f.Username()
	setting := f.HackerNoun()

	cfg.ID = "config_change"
	cfg.Name = "Configuration changed"
	cfg.Severity = f.IntRange(1, 3)

	b.Add("suser", user).
		Add("request", fmt.Sprintf("https://%s/admin/settings?key=%s&value=%d", f.DomainName(), setting, f.Number(0, 100))).
		Add("msg", fmt.Sprintf("%s changed %s\nold=%s\nnew=%s", user, setting, f.Word(), f.Word()))
}
