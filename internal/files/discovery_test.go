package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

func writeTestFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("TechRcrdId,ISIN\n1,XS001\n"), 0644))
}

func TestFindCategoryFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "FULNCR_20250201_D_2of2_fitrs.csv")
	writeTestFile(t, dir, "FULNCR_20250101_D_1of1_fitrs.csv")
	writeTestFile(t, dir, "FULNCR_20250201_D_1of2_fitrs.csv")
	writeTestFile(t, dir, "FULNCR_20250101_S_1of1_fitrs.csv")
	writeTestFile(t, dir, "FULECR_20250101_E_1of1_fitrs.csv")
	writeTestFile(t, dir, "notes.txt")

	d := NewDiscovery(dir)
	found, err := d.FindCategoryFiles(dir, domain.CategoryDebt, "")
	require.NoError(t, err)

	// Lexicographic name order: older date first, then part number.
	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"FULNCR_20250101_D_1of1_fitrs.csv",
		"FULNCR_20250201_D_1of2_fitrs.csv",
		"FULNCR_20250201_D_2of2_fitrs.csv",
	}, names)

	for _, f := range found {
		assert.Equal(t, domain.CategoryDebt, f.Descriptor.Category)
		assert.NotZero(t, f.Size)
	}
}

func TestFindCategoryFiles_FamilyFilter(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "FULECR_20250101_E_1of1_fitrs.csv")

	d := NewDiscovery(dir)

	found, err := d.FindCategoryFiles(dir, domain.CategoryEquity, domain.FamilyEquity)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = d.FindCategoryFiles(dir, domain.CategoryEquity, domain.FamilyNonEquity)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindCategoryFiles_MissingDirectory(t *testing.T) {
	d := NewDiscovery(t.TempDir())
	_, err := d.FindCategoryFiles("does-not-exist", domain.CategoryDebt, "")
	assert.Error(t, err)
}

func TestFindCategoryFiles_RelativePath(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "fitrs"), 0755))
	writeTestFile(t, filepath.Join(base, "fitrs"), "FULNCR_20250101_D_1of1_fitrs.csv")

	d := NewDiscovery(base)
	found, err := d.FindCategoryFiles("fitrs", domain.CategoryDebt, "")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestLoadWorklist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worklist.csv")
	content := "identifier,classification_code\nNL0011821202,ESVUFR\nXS2434891219,DBFTFB\nDE000C6Y8M96,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	items, err := LoadWorklist(path)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, domain.WorkItem{Identifier: "NL0011821202", ClassificationCode: "ESVUFR"}, items[0])
	assert.Equal(t, domain.WorkItem{Identifier: "XS2434891219", ClassificationCode: "DBFTFB"}, items[1])
	assert.Equal(t, domain.WorkItem{Identifier: "DE000C6Y8M96"}, items[2])
}

func TestLoadWorklist_NoHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worklist.csv")
	require.NoError(t, os.WriteFile(path, []byte("XS001\nXS002,SEBVCC\n"), 0644))

	items, err := LoadWorklist(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "XS001", items[0].Identifier)
	assert.Equal(t, "SEBVCC", items[1].ClassificationCode)
}

// Worklists arrive with varying header spellings; none of them may leak
// through as a work item.
func TestLoadWorklist_HeaderSpellings(t *testing.T) {
	headers := []string{"identifier,classification_code", "ISIN,CFI", "Id,Code", "Instrument,Type"}
	for _, header := range headers {
		t.Run(header, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "worklist.csv")
			require.NoError(t, os.WriteFile(path, []byte(header+"\nXS001,DBFTFB\n"), 0644))

			items, err := LoadWorklist(path)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "XS001", items[0].Identifier)
		})
	}
}

func TestLoadWorklist_MissingFile(t *testing.T) {
	_, err := LoadWorklist(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
