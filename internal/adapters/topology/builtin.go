package topology

import (
	"fmt"
	"hub-allocation-service/internal/ports"
)

// Hubs of the built-in dataset, in the column order of capitalDistances.
var builtinHubs = []HubSpec{
	{ID: "CD_BEL", Name: "CD Belém", Location: "Belém (PA)"},
	{ID: "CD_REC", Name: "CD Recife", Location: "Recife (PE)"},
	{ID: "CD_BSB", Name: "CD Brasília", Location: "Brasília (DF)"},
	{ID: "CD_SAO", Name: "CD São Paulo", Location: "São Paulo (SP)"},
	{ID: "CD_FLN", Name: "CD Florianópolis", Location: "Florianópolis (SC)"},
}

// Road distances in km from each hub to every state capital.
var capitalDistances = []struct {
	capital string
	km      [5]float64
}{
	{"Rio Branco (AC)", [5]float64{3150, 5150, 2670, 3500, 3850}},
	{"Maceió (AL)", [5]float64{2130, 280, 1850, 2200, 2600}},
	{"Macapá (AP)", [5]float64{870, 2200, 2200, 3100, 3400}},
	{"Manaus (AM)", [5]float64{1800, 4300, 3500, 4000, 4500}},
	{"Salvador (BA)", [5]float64{2100, 800, 1450, 1960, 2400}},
	{"Fortaleza (CE)", [5]float64{1600, 800, 2200, 3000, 3400}},
	{"Brasília (DF)", [5]float64{1950, 1650, 0, 1015, 1670}},
	{"Vitória (ES)", [5]float64{2800, 1300, 1230, 880, 1350}},
	{"Goiânia (GO)", [5]float64{2150, 1900, 210, 934, 1570}},
	{"São Luís (MA)", [5]float64{800, 1200, 2100, 2950, 3300}},
	{"Cuiabá (MT)", [5]float64{2940, 2480, 1130, 1410, 1840}},
	{"Campo Grande (MS)", [5]float64{3190, 2850, 1130, 1010, 1140}},
	{"Belo Horizonte (MG)", [5]float64{2820, 1550, 710, 580, 1020}},
	{"Belém (PA)", [5]float64{0, 2100, 1950, 2930, 3200}},
	{"João Pessoa (PB)", [5]float64{2030, 120, 2120, 2660, 2960}},
	{"Curitiba (PR)", [5]float64{3190, 2670, 1370, 410, 300}},
	{"Recife (PE)", [5]float64{2100, 0, 2110, 2670, 2970}},
	{"Teresina (PI)", [5]float64{950, 1190, 1250, 2450, 2700}},
	{"Rio de Janeiro (RJ)", [5]float64{3240, 1860, 1160, 430, 1140}},
	{"Natal (RN)", [5]float64{2180, 290, 2240, 2820, 3000}},
	{"Porto Alegre (RS)", [5]float64{3860, 3460, 2030, 1110, 480}},
	{"Porto Velho (RO)", [5]float64{4000, 4200, 2170, 2300, 2700}},
	{"Boa Vista (RR)", [5]float64{6100, 6100, 4300, 5000, 5400}},
	{"Florianópolis (SC)", [5]float64{3520, 3250, 1670, 705, 0}},
	{"São Paulo (SP)", [5]float64{2930, 2670, 1015, 0, 705}},
	{"Aracaju (SE)", [5]float64{2200, 300, 1700, 2100, 2560}},
	{"Palmas (TO)", [5]float64{2080, 1590, 970, 1400, 1800}},
}

// DefaultFleet is the three-truck fleet every built-in hub owns.
func DefaultFleet(hubID string) []TruckSpec {
	return []TruckSpec{
		{ID: fmt.Sprintf("%s_C1", hubID), CapacityKg: 999, DailyHours: 8},
		{ID: fmt.Sprintf("%s_C2", hubID), CapacityKg: 5999, DailyHours: 8},
		{ID: fmt.Sprintf("%s_C3", hubID), CapacityKg: 9999, DailyHours: 8},
	}
}

// BuiltinHubs returns the five built-in hubs with their default fleets.
func BuiltinHubs() []HubSpec {
	out := make([]HubSpec, len(builtinHubs))
	for i, h := range builtinHubs {
		h.Trucks = DefaultFleet(h.ID)
		out[i] = h
	}
	return out
}

// BuiltinEdges returns one hub->capital edge per hub and capital.
func BuiltinEdges() []ports.RouteEdge {
	edges := make([]ports.RouteEdge, 0, len(capitalDistances)*len(builtinHubs))
	for _, row := range capitalDistances {
		for i, h := range builtinHubs {
			edges = append(edges, ports.RouteEdge{
				Origin:      h.Location,
				Destination: row.capital,
				DistanceKm:  row.km[i],
			})
		}
	}
	return edges
}

// Builtin returns the fixed topology of Brazilian distribution hubs and the
// 27 state capitals they serve.
func Builtin() (*Topology, error) {
	t, err := New(BuiltinHubs(), BuiltinEdges())
	if err != nil {
		return nil, fmt.Errorf("builtin topology: %w", err)
	}
	return t, nil
}
