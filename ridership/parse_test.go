package ridership

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/dataset"
)

const sampleTraffic = `"Rang;Réseau;Station;Trafic;Correspondance_1;Correspondance_2;Correspondance_3;Correspondance_4;Correspondance_5;Ville;Arrondissement pour Paris"
1;Métro;GARE DU NORD;34503097;4;5;;;;Paris;10
2;RER;GARE DU NORD-RER;26432963;B;D;;;;Paris;10
3;Métro;SAINT-LAZARE;33128384;3;12;13;14;;Paris;8
4;Metro;LA DEFENSE;14000000;1;;;;;Puteaux;
5;RER;VERSAILLES CHANTIERS;n/a;C;;;;;Versailles;
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data_ratp.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_HeaderSplitting(t *testing.T) {
	tbl, err := Parse(strings.NewReader("\"a;b;c\"\n\"1;2;3\"\n"), Schema{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", CountColumn}, tbl.Columns)
	require.Equal(t, 1, tbl.Len())
	rec := tbl.Records[0]
	assert.Equal(t, Cell{Text: "1", Valid: true}, rec.Fields["a"])
	assert.Equal(t, Cell{Text: "2", Valid: true}, rec.Fields["b"])
	assert.Equal(t, Cell{Text: "3", Valid: true}, rec.Fields["c"])
	assert.Equal(t, 0, rec.CorrespondenceCount)
	assert.Equal(t, []string{"1", "2", "3", "0"}, tbl.Row(rec))
}

func TestParse_Sample(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sampleTraffic), DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"rang", "reseau", "station", "trafic",
		"correspondance_1", "correspondance_2", "correspondance_3", "correspondance_4", "correspondance_5",
		"ville", "arrondissement_pour_paris", CountColumn,
	}, tbl.Columns)
	require.Equal(t, 5, tbl.Len(), "row count is input rows minus the header")

	gdn := tbl.Records[0]
	assert.Equal(t, "Metro", gdn.Network, "network alias applied")
	assert.Equal(t, "GARE DU NORD", gdn.Station)
	assert.Equal(t, dataset.Float(34503097), gdn.Traffic)
	assert.Equal(t, dataset.Float(1), gdn.Rank)
	assert.Equal(t, dataset.Int(10), gdn.Arrondissement)
	assert.Equal(t, []Correspondence{Line("4"), Line("5"), NoCorrespondence(), NoCorrespondence(), NoCorrespondence()}, gdn.Correspondences)
	assert.Equal(t, 2, gdn.CorrespondenceCount)

	assert.Equal(t, 4, tbl.Records[2].CorrespondenceCount)
	assert.Equal(t, dataset.Int(8), tbl.Records[2].Arrondissement)

	defense := tbl.Records[3]
	assert.False(t, defense.Arrondissement.Valid, "empty arrondissement is absent, not zero")
	assert.Equal(t, "Metro", defense.Network)

	versailles := tbl.Records[4]
	assert.False(t, versailles.Traffic.Valid, "malformed traffic is missing")
	assert.Equal(t, dataset.Float(5), versailles.Rank)
	assert.Equal(t, 1, versailles.CorrespondenceCount)
}

func TestParse_CorrespondenceSlotsNeverEmpty(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sampleTraffic), DefaultSchema())
	require.NoError(t, err)

	for _, rec := range tbl.Records {
		require.Len(t, rec.Correspondences, 5)
		for _, c := range rec.Correspondences {
			assert.NotEmpty(t, c.String())
			if c.IsNone() {
				assert.Equal(t, NoCorrespondenceLabel, c.String())
			}
		}
		assert.Equal(t, rec.CountCorrespondences(), rec.CorrespondenceCount)
		assert.Equal(t, rec.CountCorrespondences(), rec.CountCorrespondences())
	}
}

func TestParse_ShortRow(t *testing.T) {
	input := "Rang;Réseau;Station;Trafic;Correspondance_1;Correspondance_2;Correspondance_3;Correspondance_4;Correspondance_5;Ville;Arrondissement pour Paris\n" +
		"9;RER;CERGY;1200;A\n"
	tbl, err := Parse(strings.NewReader(input), DefaultSchema())
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	rec := tbl.Records[0]
	assert.Equal(t, 1, rec.CorrespondenceCount)
	assert.False(t, rec.Arrondissement.Valid)
	assert.False(t, rec.Fields["ville"].Valid)
	for _, c := range rec.Correspondences[1:] {
		assert.True(t, c.IsNone())
	}
}

func TestParse_LiteralAucuneIsNone(t *testing.T) {
	input := "Station;Correspondance_1;Correspondance_2\nX;Aucune; 7 \n"
	schema := Schema{Station: "station", Correspondences: []string{"correspondance_1", "correspondance_2"}}
	tbl, err := Parse(strings.NewReader(input), schema)
	require.NoError(t, err)
	assert.Equal(t, []Correspondence{NoCorrespondence(), Line("7")}, tbl.Records[0].Correspondences)
	assert.Equal(t, 1, tbl.Records[0].CorrespondenceCount)
}

func TestParse_InputCountColumnIsRecomputed(t *testing.T) {
	input := "Station;Correspondance_1;nb_corr\nX;;9\n"
	schema := Schema{Station: "station", Correspondences: []string{"correspondance_1"}}
	tbl, err := Parse(strings.NewReader(input), schema)
	require.NoError(t, err)

	assert.Equal(t, []string{"station", "correspondance_1", CountColumn}, tbl.Columns)
	assert.Equal(t, 0, tbl.Records[0].CorrespondenceCount)
	assert.Equal(t, []string{"X", NoCorrespondenceLabel, "0"}, tbl.Row(tbl.Records[0]))
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing traffic column", input: "Rang;Réseau;Station\n1;RER;X\n"},
		{name: "duplicate normalized header", input: "Réseau;reseau\nA;B\n"},
		{name: "too many fields", input: "Rang;Trafic\n1;2;3\n"},
	}
	schema := Schema{Traffic: "trafic", Rank: "rang"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), schema)
			require.Error(t, err)
			assert.True(t, errors.Is(err, dataset.ErrSchema))
			assert.False(t, errors.Is(err, dataset.ErrFileAccess))
		})
	}
}

func TestParse_MissingConfiguredCorrespondence(t *testing.T) {
	input := "Station;Correspondance_1\nX;1\n"
	schema := Schema{Station: "station", Correspondences: []string{"correspondance_1", "correspondance_2"}}
	_, err := Parse(strings.NewReader(input), schema)
	assert.ErrorIs(t, err, dataset.ErrSchema)
}

func TestParse_UnconfiguredCorrespondenceColumn(t *testing.T) {
	input := "\"Rang;Réseau;Station;Trafic;Correspondance_1;Correspondance_2;Correspondance_3;Correspondance_4;Correspondance_5;Correspondance_6;Arrondissement pour Paris\"\n" +
		"1;Métro;X;10;1;;;;;;\n"
	_, err := Parse(strings.NewReader(input), DefaultSchema())
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrSchema))
	assert.Contains(t, err.Error(), "correspondance_6")

	schema := DefaultSchema()
	schema.Correspondences = append(schema.Correspondences, "Correspondance_6")
	tbl, err := Parse(strings.NewReader(input), schema)
	require.NoError(t, err)
	rec := tbl.Records[0]
	require.Len(t, rec.Correspondences, 6)
	assert.Equal(t, NoCorrespondence(), rec.Correspondences[5])
	assert.Equal(t, 1, rec.CorrespondenceCount)
	assert.Equal(t, NoCorrespondenceLabel, tbl.Row(rec)[9])
}

func TestCorrespondence_JSONRoundTrip(t *testing.T) {
	in := []Correspondence{Line("4"), NoCorrespondence(), Line("RER B")}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["4",null,"RER B"]`, string(b))

	var out []Correspondence
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), DefaultSchema())
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrFileAccess))
	assert.False(t, errors.Is(err, dataset.ErrSchema))

	_, err = Load(writeFile(t, ""), DefaultSchema())
	assert.ErrorIs(t, err, dataset.ErrFileAccess)
}

func TestLoad_Deterministic(t *testing.T) {
	path := writeFile(t, sampleTraffic)

	first, err := Load(path, DefaultSchema())
	require.NoError(t, err)
	second, err := Load(path, DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoad_Windows1252(t *testing.T) {
	raw := []byte("Rang;R\xe9seau;Station;Trafic\r\n1;M\xe9tro;OP\xc9RA;100\r\n")
	path := filepath.Join(t.TempDir(), "latin1.csv")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	schema := Schema{Network: "reseau", Station: "station", Traffic: "trafic", Rank: "rang",
		NetworkAliases: map[string]string{"Métro": "Metro"}}
	tbl, err := Load(path, schema)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "Metro", tbl.Records[0].Network)
	assert.Equal(t, "OPÉRA", tbl.Records[0].Station)
}

func TestSchema_NormalizesNames(t *testing.T) {
	input := "Arrondissement pour Paris;Station\n;X\n"
	tbl, err := Parse(strings.NewReader(input), Schema{Station: "Station", Arrondissement: "Arrondissement-Pour-Paris"})
	require.NoError(t, err)
	assert.Equal(t, "arrondissement_pour_paris", tbl.Schema().Arrondissement)
	assert.False(t, tbl.Records[0].Arrondissement.Valid)
}
