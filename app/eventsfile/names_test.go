package eventsfile

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare("Welcome", "welcome"))
	assert.Negative(t, Compare("apple", "Banana"))
	assert.Positive(t, Compare("Zebra", "banana"))
}

func TestNaturalCompare(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"Event2", "Event10", -1},
		{"Event10", "Event2", 1},
		{"event2", "EVENT2", 0},
		{"Event02", "Event2", 0},
		{"apple", "Banana", -1},
		{"Order", "OrderPlaced", -1},
		{"v1a", "v1b", -1},
	}
	for _, tc := range testCases {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			got := NaturalCompare(tc.a, tc.b)
			switch {
			case tc.want < 0:
				assert.Negative(t, got)
			case tc.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestNaturalCompareKeyOrdering(t *testing.T) {
	keys := []string{"Zebra", "apple", "Banana"}
	sort.SliceStable(keys, func(i, j int) bool { return NaturalCompare(keys[i], keys[j]) < 0 })
	assert.Equal(t, []string{"apple", "Banana", "Zebra"}, keys)
}

func TestDedupeKeepsFirstCasing(t *testing.T) {
	got := Dedupe([]string{"Welcome", "notify", "WELCOME", "", "Notify"})
	assert.Equal(t, []string{"Welcome", "notify"}, got)
}

func TestSortUnique(t *testing.T) {
	got := SortUnique([]string{"gamma", "Alpha", "beta", "ALPHA"})
	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, got)
}

func TestShortNameAndNamespace(t *testing.T) {
	testCases := []struct {
		ref       string
		short     string
		namespace string
	}{
		{`App\Events\Listeners\SendMail`, "SendMail", `App\Events\Listeners`},
		{"User/Registered", "Registered", "User"},
		{`\App\Events\Registered`, "Registered", `App\Events`},
		{"Registered", "Registered", ""},
		{`Mixed/Path\Name`, "Name", `Mixed\Path`},
	}
	for _, tc := range testCases {
		t.Run(tc.ref, func(t *testing.T) {
			assert.Equal(t, tc.short, ShortName(tc.ref))
			assert.Equal(t, tc.namespace, NamespaceOf(tc.ref))
		})
	}
}
