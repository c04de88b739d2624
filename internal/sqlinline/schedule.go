package sqlinline

// The cost schedule is a single jsonb row; the API and the worker read the
// same committed costs.
const QSelectCostSchedule = `--sql 4f3b8484-ab2d-4cd9-ac57-6fdffcd7c77d
select costs
from cost_schedule
where singleton = true
limit 1;
`

const QUpsertCostSchedule = `--sql b076ef7b-974c-45b2-8b03-865932b3a5d6
insert into cost_schedule (singleton, costs, updated_at)
values (true, $1, now())
on conflict (singleton) do update set
    costs = excluded.costs,
    updated_at = now();
`
