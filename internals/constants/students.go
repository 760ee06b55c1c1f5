package constants

// Jenis kelamin siswa.
const (
	GenderMale   = 0
	GenderFemale = 1
)

var genderLabels = map[int]string{
	GenderMale:   "Laki-laki",
	GenderFemale: "Perempuan",
}

func GenderLabel(id int) string {
	return genderLabels[id]
}

func IsValidGender(id int) bool {
	_, ok := genderLabels[id]
	return ok
}

// Agama mengikuti kode resmi + 99 untuk lainnya.
const (
	ReligionIslam     = 1
	ReligionProtestan = 2
	ReligionKatolik   = 3
	ReligionHindu     = 4
	ReligionBudha     = 5
	ReligionKhonghucu = 6
	ReligionOther     = 99
)

var religionLabels = map[int]string{
	ReligionIslam:     "Islam",
	ReligionProtestan: "Kristen Protestan",
	ReligionKatolik:   "Kristen Katolik",
	ReligionHindu:     "Hindu",
	ReligionBudha:     "Buddha",
	ReligionKhonghucu: "Khonghucu",
	ReligionOther:     "Lainnya",
}

func ReligionLabel(id int) string {
	return religionLabels[id]
}

func IsValidReligion(id int) bool {
	_, ok := religionLabels[id]
	return ok
}
