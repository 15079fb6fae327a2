// Package roles loads the role catalog from CSV and hands it to the
// matching engine as parsed records.
package roles

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mhewson/rolematch/pkg/core/matching"
)

// Column names the loader maps onto typed RoleRecord fields. Any other
// column is carried through in Extra.
const (
	colRoleName           = "role_name"
	colAgeMin             = "age_min"
	colAgePreference      = "age_preference"
	colPhysicalReq        = "physical_req"
	colLeadershipPref     = "leadership_pref"
	colWorkPref           = "work_pref"
	colDistrictCommitment = "district_day_commitment"
	colRegionalCommitment = "regional_day_commitment"
	colPriorExperience    = "prior_first_exp"
	colGameKnowledge      = "basic_game_knowledge"
	colRequiredSkills     = "required_skills"
	colRequiredExperience = "required_experience"
)

// Load reads the role catalog from a CSV file.
func Load(path string) ([]matching.RoleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", matching.ErrDatasetLoad, path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Parse reads role records from CSV data. The first row must be a header
// containing at least a role_name column; rows with a blank role name are
// skipped.
func Parse(r io.Reader) ([]matching.RoleRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", matching.ErrDatasetLoad)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", matching.ErrDatasetLoad, err)
	}

	columns := make([]string, len(header))
	nameIndex := -1
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
		if columns[i] == colRoleName {
			nameIndex = i
		}
	}
	if nameIndex < 0 {
		return nil, fmt.Errorf("%w: missing %s column", matching.ErrDatasetLoad, colRoleName)
	}

	var records []matching.RoleRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %v", matching.ErrDatasetLoad, err)
		}

		record := rowToRecord(columns, row)
		if record.Name == "" {
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no role rows", matching.ErrDatasetLoad)
	}
	return records, nil
}

func rowToRecord(columns, row []string) matching.RoleRecord {
	record := matching.RoleRecord{Extra: map[string]string{}}

	for i, column := range columns {
		if i >= len(row) {
			break
		}
		value := strings.TrimSpace(row[i])

		switch column {
		case colRoleName:
			record.Name = value
		case colAgeMin:
			record.AgeMin = value
		case colAgePreference:
			record.AgePreference = value
		case colPhysicalReq:
			record.PhysicalReq = value
		case colLeadershipPref:
			record.LeadershipPref = value
		case colWorkPref:
			record.WorkPref = value
		case colDistrictCommitment:
			record.DistrictDayCommitment = value
		case colRegionalCommitment:
			record.RegionalDayCommitment = value
		case colPriorExperience:
			record.PriorExperience = value
		case colGameKnowledge:
			record.GameKnowledge = value
		case colRequiredSkills:
			record.RequiredSkills = value
		case colRequiredExperience:
			record.RequiredExperience = value
		default:
			record.Extra[column] = value
		}
	}

	return record
}
