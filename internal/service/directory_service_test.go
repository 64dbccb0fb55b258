package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_ReadsFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locations.json"),
		[]byte(`[{"name":"Campus 25","type":"academic","lat":20.36,"lng":85.82}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "personnel.json"),
		[]byte(`[{"title":"Registrar","name":"J. Doe","campus":"Campus 3"}]`), 0o644))

	svc := NewDirectoryService(dir, nil)

	locations := svc.Locations(context.Background())
	require.Len(t, locations, 1)
	assert.Equal(t, "Campus 25", locations[0].Name)
	assert.Equal(t, 85.82, locations[0].Lng)

	personnel := svc.Personnel(context.Background())
	require.Len(t, personnel, 1)
	assert.Equal(t, "Registrar", personnel[0].Title)
}

func TestDirectoryService_FallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "personnel.json"), []byte(`{not json`), 0o644))

	svc := NewDirectoryService(dir, nil)

	assert.Equal(t, demoLocations(), svc.Locations(context.Background()))
	assert.Equal(t, demoPersonnel(), svc.Personnel(context.Background()))
}
