package constvars

// Action identifiers gated by the role-permission registry. Comparison is
// exact-string and case-sensitive; unknown actions deny.
const (
	ActionViewPatients      = "view_patients"
	ActionViewAllPatients   = "view_all_patients"
	ActionCreatePatient     = "create_patient"
	ActionEditPatient       = "edit_patient"
	ActionDeletePatient     = "delete_patient"

	ActionViewAllDoctors = "view_all_doctors"
	ActionCreateDoctor   = "create_doctor"
	ActionEditDoctor     = "edit_doctor"
	ActionDeleteDoctor   = "delete_doctor"

	ActionViewAppointments  = "view_appointments"
	ActionCreateAppointment = "create_appointment"
	ActionEditAppointment   = "edit_appointment"
	ActionDeleteAppointment = "delete_appointment"

	ActionViewMedicalRecords  = "view_medical_records"
	ActionCreateMedicalRecord = "create_medical_record"
	ActionEditMedicalRecord   = "edit_medical_record"

	ActionViewPrescriptions  = "view_prescriptions"
	ActionCreatePrescription = "create_prescription"
	ActionEditPrescription   = "edit_prescription"

	ActionViewMedicines  = "view_medicines"
	ActionCreateMedicine = "create_medicine"
	ActionEditMedicine   = "edit_medicine"
	ActionDeleteMedicine = "delete_medicine"

	ActionViewSelf = "view_self"
	ActionEditSelf = "edit_self"

	ActionViewRoles  = "view_roles"
	ActionEditRoles  = "edit_roles"
	ActionDeleteUser = "delete_user"
)

// Decision reason codes surfaced to request handlers.
const (
	ReasonRoleGrant              = "role_grant"
	ReasonOwnership              = "ownership"
	ReasonActorInactive          = "actor_inactive"
	ReasonInsufficientPermission = "insufficient_permission"
)
