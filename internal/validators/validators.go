package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/calensys/appointment-api/internal/domain/schedule"
)

// Register installs the custom binding tags used by the request DTOs:
// `dateymd` for YYYY-MM-DD dates and `hhmm` for HH:mm wall-clock times.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		_, err := schedule.ParseDate(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, _, err := schedule.ParseClock(fl.Field().String())
		return err == nil
	})
}
