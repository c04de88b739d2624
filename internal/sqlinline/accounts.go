// Package sqlinline holds every SQL statement the service runs. Each query
// starts with a marker line the SQL runner logs and lints against, so a slow
// or failing statement in production maps straight back to one constant here.
package sqlinline

const QInsertAccount = `--sql 6c154b4b-771c-46d3-889f-adb7235ac737
insert into accounts (id, name, email, plan, role, status, daily, max_daily, monthly, max_monthly, joined_at)
values ($1, $2, lower($3), $4, $5, $6, $7, $8, $9, $10, $11);
`

const QSelectAccountByID = `--sql 9a228005-00a4-440b-9e26-196f2940bb09
select id, name, email, plan, role, status, daily, max_daily, monthly, max_monthly, joined_at
from accounts
where id = $1
limit 1;
`

const QSelectAccountByEmail = `--sql 4b728b6c-cb74-4f8d-9de1-abd608e2500b
select id, name, email, plan, role, status, daily, max_daily, monthly, max_monthly, joined_at
from accounts
where email = lower($1)
limit 1;
`

const QUpdateAccount = `--sql b19ad466-7237-4aa2-9413-397283e09fea
update accounts
set name = $2,
    email = lower($3),
    plan = $4,
    role = $5,
    status = $6,
    daily = $7,
    max_daily = $8,
    monthly = $9,
    max_monthly = $10
where id = $1;
`

const QListAccounts = `--sql 503def87-605f-470f-805d-585a5bf3bb2d
select id, name, email, plan, role, status, daily, max_daily, monthly, max_monthly, joined_at
from accounts
order by joined_at asc, id asc;
`

const QReplenishDaily = `--sql 5e1df84f-3a05-4647-b780-25e65194b11e
update accounts set daily = max_daily;
`

const QReplenishMonthly = `--sql 0ec7536e-926e-4876-9385-c5cbbf214d43
update accounts set monthly = max_monthly;
`
