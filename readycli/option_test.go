package readycli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionBuilder(t *testing.T) {
	opt := NewOption("myoption", "An option").
		Alias("mo", "m").
		Parameter("p1", "first", "d1").
		Parameter("p2", "second", "d2").
		Build()

	if opt.Name() != "myoption" {
		t.Errorf("Name() = %q, want %q", opt.Name(), "myoption")
	}
	if diff := cmp.Diff([]string{"mo", "m"}, opt.Aliases()); diff != "" {
		t.Errorf("Aliases() mismatch (-want +got):\n%s", diff)
	}
	params := opt.Parameters()
	if len(params) != 2 || params[0].Name() != "p1" || params[1].Name() != "p2" {
		t.Errorf("Parameters() = %v, want p1 then p2", params)
	}
	if params[0].DefaultValue() != "d1" {
		t.Errorf("p1 default = %q, want %q", params[0].DefaultValue(), "d1")
	}
}

func TestOptionBuilderDefensiveCopy(t *testing.T) {
	b := NewOption("opt", "desc").Parameter("p", "param", "d")
	first := b.Build()
	b.Parameter("extra", "added after first build", "x")
	second := b.Build()

	if len(first.Parameters()) != 1 {
		t.Errorf("first build has %d parameters, want 1", len(first.Parameters()))
	}
	if len(second.Parameters()) != 2 {
		t.Errorf("second build has %d parameters, want 2", len(second.Parameters()))
	}
}

func TestOptionInvalidNamePanics(t *testing.T) {
	for _, name := range []string{"", "1bad", "-lead", "has space", "uni_code"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewOption(%q) did not panic", name)
				}
			}()
			NewOption(name, "desc")
		}()
	}
}

func TestOptionValues(t *testing.T) {
	opt := NewOption("myoption", "desc").
		Parameter("p1", "first", "d1").
		Parameter("p2", "second", "d2").
		Build()

	supplied := opt.values([]string{"A", "B"})
	if !supplied.Flag() {
		t.Error("values(): Flag() = false, want true")
	}
	if supplied.OptionName() != "myoption" {
		t.Errorf("OptionName() = %q, want %q", supplied.OptionName(), "myoption")
	}
	want := map[string]string{"p1": "A", "p2": "B"}
	if diff := cmp.Diff(want, supplied.Parameters()); diff != "" {
		t.Errorf("supplied parameters mismatch (-want +got):\n%s", diff)
	}

	defaulted := opt.defaults()
	if defaulted.Flag() {
		t.Error("defaults(): Flag() = true, want false")
	}
	wantDefaults := map[string]string{"p1": "d1", "p2": "d2"}
	if diff := cmp.Diff(wantDefaults, defaulted.Parameters()); diff != "" {
		t.Errorf("default parameters mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionValuesImmutableView(t *testing.T) {
	opt := NewOption("o", "desc").Parameter("p", "param", "d").Build()
	v := opt.defaults()

	view := v.Parameters()
	view["p"] = "mutated"
	if v.Get("p") != "d" {
		t.Error("mutating the Parameters() copy affected the OptionValues")
	}
}

func TestOptionValuesString(t *testing.T) {
	opt := NewOption("o", "desc").
		Parameter("a", "", "1").
		Parameter("b", "", "2").
		Build()
	got := opt.defaults().String()
	want := "{flag=false, parameters={a=1, b=2}}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
