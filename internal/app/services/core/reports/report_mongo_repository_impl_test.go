package reports

import (
	"testing"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildReportFilter_DefaultsToActive(t *testing.T) {
	query := BuildReportFilter(&models.ReportFilter{Active: true})

	assert.Equal(t, bson.M{constvars.MongoFieldReportActive: true}, query)
}

func TestBuildReportFilter_SearchAndFields(t *testing.T) {
	query := BuildReportFilter(&models.ReportFilter{
		Search:      "ana (1)",
		PatientName: "Carla",
	})

	pattern := bson.M{constvars.MongoOperatorRegex: "ana \\(1\\)", constvars.MongoOperatorOptions: "i"}
	assert.Equal(t, false, query[constvars.MongoFieldReportActive])
	assert.Equal(t, bson.A{
		bson.M{constvars.MongoFieldReportStudentName: pattern},
		bson.M{constvars.MongoFieldReportPatientName: pattern},
		bson.M{constvars.MongoFieldReportTreatmentType: pattern},
		bson.M{constvars.MongoFieldReportStaffName: pattern},
	}, query[constvars.MongoOperatorOr])
	assert.Equal(t, bson.M{constvars.MongoOperatorRegex: "Carla", constvars.MongoOperatorOptions: "i"}, query[constvars.MongoFieldReportPatientName])
	assert.NotContains(t, query, constvars.MongoFieldReportStudentName)
}

func TestBuildReportFilter_DayRangeAndScope(t *testing.T) {
	from := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 0, 1)
	studentID := primitive.NewObjectID()

	query := BuildReportFilter(&models.ReportFilter{
		Active:       true,
		CreatedFrom:  &from,
		CreatedUntil: &until,
		StudentIDs:   []primitive.ObjectID{studentID},
	})

	assert.Equal(t, bson.M{constvars.MongoOperatorGte: from, constvars.MongoOperatorLt: until}, query[constvars.MongoFieldReportCreatedAt])
	assert.Equal(t, bson.M{constvars.MongoOperatorIn: []primitive.ObjectID{studentID}}, query[constvars.MongoFieldReportStudentID])
}
