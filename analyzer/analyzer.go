// Package analyzer computes grade statistics over an in-memory roster.
//
// The core functions (Average, Median, MaxScore, MinScore, Classify,
// AssignGrades, GradeDistribution, PassFailPartition) are total: an empty
// roster yields sentinel values, never an error, and no function mutates
// the roster it is given. Report* functions render those values as text,
// markdown or JSON.
package analyzer
