package shortstobenz

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// DefaultLecture is assigned to files whose name carries no "N강" marker.
const DefaultLecture = 1

var (
	lectureMarker = regexp.MustCompile(`(\d+)강`)
	partMarker    = regexp.MustCompile(`(\d+)부`)
)

// Lecture is the ordered part files of one lecture.
type Lecture struct {
	Number int
	Files  []string
}

// LectureNumber extracts the lecture number from a file name.
func LectureNumber(path string) int {
	return markerNumber(lectureMarker, path, DefaultLecture)
}

// GroupLectures groups part files by lecture number. Lectures are sorted by
// number; files within a lecture by part number ("N부"), then by name, so
// "1강_10부" follows "1강_2부".
func GroupLectures(paths []string) []Lecture {
	byNumber := make(map[int][]string)
	for _, p := range paths {
		n := LectureNumber(p)
		byNumber[n] = append(byNumber[n], p)
	}

	lectures := make([]Lecture, 0, len(byNumber))
	for n, files := range byNumber {
		sort.SliceStable(files, func(i, j int) bool {
			pi := markerNumber(partMarker, files[i], 0)
			pj := markerNumber(partMarker, files[j], 0)
			if pi != pj {
				return pi < pj
			}
			return files[i] < files[j]
		})
		lectures = append(lectures, Lecture{Number: n, Files: files})
	}
	sort.Slice(lectures, func(i, j int) bool {
		return lectures[i].Number < lectures[j].Number
	})
	return lectures
}

// markerNumber matches against the NFC base name, since file systems such as
// APFS hand back decomposed Hangul.
func markerNumber(re *regexp.Regexp, path string, fallback int) int {
	name := norm.NFC.String(filepath.Base(path))
	m := re.FindStringSubmatch(name)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return n
}
