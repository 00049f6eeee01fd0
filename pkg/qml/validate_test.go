package qml_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/qml"
)

func TestValidateFixture(t *testing.T) {
	doc := loadFixture(t)

	// the fixture carries content defects (contradictory filter, shared
	// boundary) but is structurally sound
	if err := doc.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateProblems(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			"dangling symbol reference",
			`<qgis version="3.22">
				<renderer-v2 type="RuleRenderer">
					<rules><rule key="{a}" symbol="7" label="x"/></rules>
					<symbols><symbol type="marker" name="0"/></symbols>
				</renderer-v2>
			</qgis>`,
			"undefined symbol",
		},
		{
			"duplicate rule key",
			`<qgis version="3.22">
				<renderer-v2 type="RuleRenderer">
					<rules>
						<rule key="{a}" symbol="0"/>
						<rule key="{a}" symbol="0"/>
					</rules>
					<symbols><symbol type="marker" name="0"/></symbols>
				</renderer-v2>
			</qgis>`,
			"duplicate rule key",
		},
		{
			"missing rule key",
			`<qgis version="3.22">
				<renderer-v2 type="RuleRenderer">
					<rules><rule symbol="0" label="x"/></rules>
					<symbols><symbol type="marker" name="0"/></symbols>
				</renderer-v2>
			</qgis>`,
			"has no key",
		},
		{
			"widget without type",
			`<qgis version="3.22">
				<fieldConfiguration>
					<field name="individuals"><editWidget><config><Option/></config></editWidget></field>
				</fieldConfiguration>
			</qgis>`,
			"edit widget has no type",
		},
		{
			"temporal start field unknown",
			`<qgis version="3.22">
				<temporal enabled="1" startField="observed"/>
				<fieldConfiguration>
					<field name="individuals"><editWidget type="Range"><config><Option/></config></editWidget></field>
				</fieldConfiguration>
			</qgis>`,
			"temporal start field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := qml.Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			err = doc.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, qml.ErrInvalid) {
				t.Errorf("Validate() error = %v, want wrapped ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateNonRuleRenderer(t *testing.T) {
	doc, err := qml.Parse(strings.NewReader(
		`<qgis version="3.22"><renderer-v2 type="singleSymbol"/></qgis>`,
	))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if err := doc.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for non-rule renderer", err)
	}
}
