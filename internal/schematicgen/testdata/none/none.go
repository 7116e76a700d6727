package none

type Plain struct{ V int }
